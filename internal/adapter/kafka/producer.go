package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	_ port.AdminEventsProducer   = (*AdminEventsProducer)(nil)
	_ port.ProductFilterProducer = (*ProductFilterProducer)(nil)
)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
	encoder  Encoder
}

func newProducer(opPrefix string, opts ...ProducerOpt) (producer, error) {
	const op = "newProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, opPrefix, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return producer{}, err
		}
	}

	return producer{
		opPrefix: opPrefix,
		cl:       options.cl,
		encoder:  options.encoder,
	}, nil
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(ctx context.Context, key string, v any) error {
	const op = "produce"

	b, err := p.encoder.Encode(v)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{Key: []byte(key), Value: b}
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// An AdminEventsProducer publishes the audit trail of back-office changes.
//
// Records are keyed by "<entity>/<entity_id>" so the changes of one entity
// stay ordered within a partition.
type AdminEventsProducer struct {
	producer producer
}

func NewAdminEventsProducer(opts ...ProducerOpt) (AdminEventsProducer, error) {
	const op = "NewAdminEventsProducer"

	p, err := newProducer("AdminEventsProducer", opts...)
	if err != nil {
		return AdminEventsProducer{}, opErr(err, op)
	}
	return AdminEventsProducer{p}, nil
}

func (p AdminEventsProducer) Close() {
	p.producer.close()
}

func (p AdminEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.AdminEvent,
) error {
	const op = "ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}

	key := string(evt.Entity) + "/" + evt.EntityID
	if err := p.producer.produce(ctx, key, adminEventToSchemaV1(evt)); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}
	return nil
}

// A ProductFilterProducer used for produce [domain.ProductFilter]
type ProductFilterProducer struct {
	producer producer
}

func NewProductFilterProducer(
	opts ...ProducerOpt,
) (ProductFilterProducer, error) {
	const op = "NewProductFilterProducer"

	p, err := newProducer("ProductFilterProducer", opts...)
	if err != nil {
		return ProductFilterProducer{}, opErr(err, op)
	}
	return ProductFilterProducer{p}, nil
}

func (p ProductFilterProducer) Close() {
	p.producer.close()
}

func (p ProductFilterProducer) ProduceFilter(
	ctx context.Context, fv domain.ProductFilter,
) error {
	const op = "ProduceFilter"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}

	s := productFilterToSchemaV1(fv)
	if err := p.producer.produce(ctx, s.ProductName, s); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}
	return nil
}
