package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/niksmo/ecom-admin/pkg/configtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRoundTrip(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"branding": {"name": "Shop", "primaryColor": "#000"},
		"hero": {"slides": [{"title": "Spring", "order": 1}]},
		"shipping": {"fee": 12.50, "freeFrom": 100000000000000001}
	}`))
	require.NoError(t, err)

	in := ConfigBackup{
		Version:    SiteConfigVersion,
		ExportedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		Config:     doc,
	}

	data, err := MarshalBackup(in)
	require.NoError(t, err)

	out, err := UnmarshalBackup(data)
	require.NoError(t, err)

	assert.Equal(t, in.Version, out.Version)
	assert.True(t, in.ExportedAt.Equal(out.ExportedAt))
	assert.True(t, configtree.Equal(in.Config, out.Config))

	fee, _ := configtree.Get(out.Config, "shipping.fee")
	assert.Equal(t, json.Number("12.50"), fee)
	big, _ := configtree.Get(out.Config, "shipping.freeFrom")
	assert.Equal(t, json.Number("100000000000000001"), big)
}

func TestUnmarshalBackup(t *testing.T) {
	t.Run("BareObject", func(t *testing.T) {
		b, err := UnmarshalBackup([]byte(`{"branding":{"name":"Shop"}}`))
		require.NoError(t, err)
		assert.Equal(t, SiteConfigVersion, b.Version)
		assert.Contains(t, b.Config, "branding")
	})

	t.Run("BareObjectWithConfigKey", func(t *testing.T) {
		b, err := UnmarshalBackup([]byte(`{"config":{"theme":"dark"},"branding":{"name":"Shop"}}`))
		require.NoError(t, err)
		assert.Equal(t, SiteConfigVersion, b.Version)
		assert.Contains(t, b.Config, "config")
		assert.Contains(t, b.Config, "branding")
	})

	t.Run("NotAnObject", func(t *testing.T) {
		_, err := UnmarshalBackup([]byte(`[1,2]`))
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Null", func(t *testing.T) {
		_, err := UnmarshalBackup([]byte(`null`))
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := UnmarshalBackup([]byte(`{"config":`))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
