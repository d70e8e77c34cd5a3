package main

import (
	"testing"

	"github.com/niksmo/ecom-admin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTopics(t *testing.T) {
	var cfg config.Config
	cfg.Broker.Topics.AdminEvents = "admin-events"
	cfg.Broker.Topics.FilterProductStream = "filter-product-stream"
	cfg.Broker.Consumers.FilterProductGroup = "filter-product"

	specs := adminTopics(cfg)
	require.Len(t, specs, 3)

	byName := make(map[string]map[string]*string, len(specs))
	for _, s := range specs {
		byName[s.name] = s.configs
	}

	events := byName["admin-events"]
	require.NotNil(t, events)
	assert.Equal(t, "delete", *events["cleanup.policy"])
	assert.Equal(t, "7776000000", *events["retention.ms"])
	assert.Equal(t, "2", *events["min.insync.replicas"])

	stream := byName["filter-product-stream"]
	require.NotNil(t, stream)
	assert.Equal(t, "delete", *stream["cleanup.policy"])
	assert.Equal(t, "604800000", *stream["retention.ms"])

	table := byName["filter-product-table"]
	require.NotNil(t, table)
	assert.Equal(t, "compact", *table["cleanup.policy"])
	assert.NotContains(t, table, "retention.ms")
}
