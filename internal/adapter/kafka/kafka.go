package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lovoo/goka"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

// Security holds the optional TLS and SASL/PLAIN settings of the broker.
type Security struct {
	TLS  *tls.Config
	User string
	Pass string
}

func (s Security) kgoOpts() []kgo.Opt {
	var opts []kgo.Opt
	if s.TLS != nil {
		opts = append(opts, kgo.DialTLSConfig(s.TLS))
	}
	if s.User != "" {
		opts = append(opts, kgo.SASL(plain.Auth{User: s.User, Pass: s.Pass}.AsMechanism()))
	}
	return opts
}

// ApplyGoka sets the security settings to the global goka config.
// It must be called before any processor or view is created.
func (s Security) ApplyGoka() {
	if s.TLS == nil && s.User == "" {
		return
	}
	cfg := goka.DefaultConfig()
	if s.TLS != nil {
		cfg.Net.TLS.Enable = true
		cfg.Net.TLS.Config = s.TLS
	}
	if s.User != "" {
		cfg.Net.SASL.Enable = true
		cfg.Net.SASL.User = s.User
		cfg.Net.SASL.Password = s.Pass
	}
	goka.ReplaceGlobalConfig(cfg)
}

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, sec Security,
) ProducerOpt {
	return func(opts *producerOpts) error {
		kopts := append([]kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
		}, sec.kgoOpts()...)

		cl, err := kgo.NewClient(kopts...)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

// ProducerTestClientOpt sets an already built client.
func ProducerTestClientOpt(cl ProducerClient) ProducerOpt {
	return func(opts *producerOpts) error {
		if cl == nil {
			return errors.New("producer client is nil")
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNonlogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func adminEventToSchemaV1(v domain.AdminEvent) schema.AdminEventV1 {
	return schema.AdminEventV1{
		EventID:    v.ID,
		Kind:       string(v.Kind),
		Entity:     string(v.Entity),
		EntityID:   v.EntityID,
		Actor:      v.Actor,
		OccurredAt: v.OccurredAt,
		Payload:    string(v.Payload),
	}
}

func productFilterToSchemaV1(
	v domain.ProductFilter,
) (s schema.ProductFilterV1) {
	s.ProductName = v.ProductName
	s.Blocked = v.Blocked
	return
}
