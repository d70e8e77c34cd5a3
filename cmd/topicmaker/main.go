package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lovoo/goka"
	"github.com/niksmo/ecom-admin/config"
	"github.com/niksmo/ecom-admin/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	minISR            = 2

	cleanupDelete  = "delete"
	cleanupCompact = "compact"

	// Audit trail of admin mutations.
	adminEventsRetention = 90 * 24 * time.Hour

	// Filter rules are folded into the group table, the stream is replay only.
	filterStreamRetention = 7 * 24 * time.Hour
)

// A topicSpec is a topic with the configs it is created with.
type topicSpec struct {
	name    string
	configs map[string]*string
}

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	cl := createClient(cfg.Broker.SeedBrokers)
	defer cl.Close()

	specs := adminTopics(cfg)

	printStart(specs)
	defer printComplete(time.Now())

	if err := makeTopics(sigCtx, cl, specs); err != nil {
		printFail(err)
	}
}

func createClient(seedBrokers []string) *kadm.Client {
	cl, err := kadm.NewOptClient(
		kgo.SeedBrokers(seedBrokers...),
	)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

// adminTopics lists the topics the admin service produces to and the goka
// group table it reads the product filter from.
func adminTopics(cfg config.Config) []topicSpec {
	return []topicSpec{
		{
			name:    cfg.Broker.Topics.AdminEvents,
			configs: topicConfigs(cleanupDelete, adminEventsRetention),
		},
		{
			name:    cfg.Broker.Topics.FilterProductStream,
			configs: topicConfigs(cleanupDelete, filterStreamRetention),
		},
		{
			name:    toGroupTable(cfg.Broker.Consumers.FilterProductGroup),
			configs: topicConfigs(cleanupCompact, 0),
		},
	}
}

// topicConfigs returns the topic configs for the cleanup policy.
// Zero retention keeps the broker default.
func topicConfigs(cleanupPolicy string, retention time.Duration) map[string]*string {
	configs := map[string]*string{
		"cleanup.policy":      kadm.StringPtr(cleanupPolicy),
		"min.insync.replicas": kadm.StringPtr(strconv.Itoa(minISR)),
	}
	if retention > 0 {
		configs["retention.ms"] = kadm.StringPtr(
			strconv.FormatInt(retention.Milliseconds(), 10),
		)
	}
	return configs
}

func makeTopics(ctx context.Context, cl *kadm.Client, specs []topicSpec) error {
	var errs []error
	for _, spec := range specs {
		res, err := cl.CreateTopic(
			ctx, partitions, replicationFactor, spec.configs, spec.name,
		)
		if err == nil {
			err = res.Err
		}
		switch {
		case err == nil:
			fmt.Printf("topic: %q successfully created\n", spec.name)
		case errors.Is(err, kerr.TopicAlreadyExists):
			fmt.Printf("topic: %q already exists\n", spec.name)
		default:
			errs = append(errs, fmt.Errorf("topic %q: %w", spec.name, err))
		}
	}
	return errors.Join(errs...)
}

func printStart(specs []topicSpec) {
	fmt.Println("initializing topics...")
	for _, spec := range specs {
		fmt.Printf("\t- %q cleanup.policy=%s\n",
			spec.name, *spec.configs["cleanup.policy"])
	}
	fmt.Println()
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}

func toGroupTable(group string) string {
	return string(goka.GroupTable(goka.Group(group)))
}
