package configtree_test

import (
	"encoding/json"
	"testing"

	"github.com/niksmo/ecom-admin/pkg/configtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, s string) configtree.Document {
	t.Helper()
	var doc configtree.Document
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	return doc
}

func TestSet(t *testing.T) {
	t.Run("CreatesIntermediateObjects", func(t *testing.T) {
		got := configtree.Set(nil, "branding.logo.url", "/logo.png")

		want := configtree.Document{
			"branding": map[string]any{
				"logo": map[string]any{"url": "/logo.png"},
			},
		}
		assert.Equal(t, want, got)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		doc := mustDoc(t, `{"branding":{"name":"Shop"}}`)
		before := configtree.Clone(doc)

		got := configtree.Set(doc, "branding.name", "Store")

		assert.Equal(t, before, doc)
		assert.Equal(t, "Store", got["branding"].(map[string]any)["name"])
		assert.False(t, configtree.Equal(doc, got))
	})

	t.Run("Idempotent", func(t *testing.T) {
		doc := mustDoc(t, `{"contact":{"email":"a@b.c"},"footer":{"text":"x"}}`)

		once := configtree.Set(doc, "contact.phone", "123")
		twice := configtree.Set(once, "contact.phone", "123")

		assert.True(t, configtree.Equal(once, twice))
	})

	t.Run("PreservesSiblings", func(t *testing.T) {
		doc := mustDoc(t, `{
			"contact":{"email":"a@b.c","phone":"1"},
			"footer":{"links":[{"label":"About"}]}
		}`)

		got := configtree.Set(doc, "contact.phone", "2")

		assert.Equal(t, doc["footer"], got["footer"])
		assert.Equal(t, "a@b.c", got["contact"].(map[string]any)["email"])
		assert.Equal(t, "2", got["contact"].(map[string]any)["phone"])
	})

	t.Run("ReplacesScalarIntermediate", func(t *testing.T) {
		doc := mustDoc(t, `{"logo":"/old.png"}`)

		got := configtree.Set(doc, "logo.url", "/new.png")

		assert.Equal(t, map[string]any{"url": "/new.png"}, got["logo"])
	})

	t.Run("IndexesIntoArray", func(t *testing.T) {
		doc := mustDoc(t, `{"hero":{"slides":[{"title":"a"},{"title":"b"}]}}`)

		got := configtree.Set(doc, "hero.slides.1.title", "c")

		v, ok := configtree.Get(got, "hero.slides.1.title")
		require.True(t, ok)
		assert.Equal(t, "c", v)

		v, ok = configtree.Get(doc, "hero.slides.1.title")
		require.True(t, ok)
		assert.Equal(t, "b", v)
	})

	t.Run("NonIndexSegmentKeepsArray", func(t *testing.T) {
		doc := mustDoc(t, `{"slides":[{"title":"a"}]}`)

		got := configtree.Set(doc, "slides.first.title", "b")

		assert.True(t, configtree.Equal(doc, got))
	})

	t.Run("ValueIsCopied", func(t *testing.T) {
		value := map[string]any{"label": "Home"}

		got := configtree.Set(nil, "nav.home", value)
		value["label"] = "changed"

		v, _ := configtree.Get(got, "nav.home.label")
		assert.Equal(t, "Home", v)
	})
}

func TestAppend(t *testing.T) {
	t.Run("InitializesMissingArray", func(t *testing.T) {
		got := configtree.Append(nil, "navigation.links", "home")

		v, ok := configtree.Get(got, "navigation.links")
		require.True(t, ok)
		assert.Equal(t, []any{"home"}, v)
	})

	t.Run("ReplacesNonArray", func(t *testing.T) {
		doc := mustDoc(t, `{"tags":"sale"}`)

		got := configtree.Append(doc, "tags", "new")

		assert.Equal(t, []any{"new"}, got["tags"])
	})

	t.Run("PushesToExisting", func(t *testing.T) {
		doc := mustDoc(t, `{"footer":{"links":["a","b"]}}`)

		got := configtree.Append(doc, "footer.links", "c")

		v, _ := configtree.Get(got, "footer.links")
		assert.Equal(t, []any{"a", "b", "c"}, v)

		v, _ = configtree.Get(doc, "footer.links")
		assert.Equal(t, []any{"a", "b"}, v)
	})
}

func TestRemoveAt(t *testing.T) {
	doc := mustDoc(t, `{"hero":{"slides":["a","b","c"]},"title":"x"}`)

	tests := []struct {
		name  string
		path  string
		index int
		want  configtree.Document
	}{
		{
			name:  "Middle",
			path:  "hero.slides",
			index: 1,
			want:  mustDoc(t, `{"hero":{"slides":["a","c"]},"title":"x"}`),
		},
		{
			name:  "IndexTooLarge",
			path:  "hero.slides",
			index: 3,
			want:  doc,
		},
		{
			name:  "NegativeIndex",
			path:  "hero.slides",
			index: -1,
			want:  doc,
		},
		{
			name:  "NotAnArray",
			path:  "title",
			index: 0,
			want:  doc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configtree.RemoveAt(doc, tt.path, tt.index)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("InputUntouched", func(t *testing.T) {
		v, _ := configtree.Get(doc, "hero.slides")
		assert.Len(t, v, 3)
	})

	t.Run("MissingPathCreatesIntermediates", func(t *testing.T) {
		got := configtree.RemoveAt(nil, "a.b", 0)
		assert.Equal(t, configtree.Document{"a": map[string]any{}}, got)
	})
}

func TestGet(t *testing.T) {
	doc := mustDoc(t, `{"a":{"b":[{"c":1}]}}`)

	_, ok := configtree.Get(doc, "a.b.0.c")
	assert.True(t, ok)

	_, ok = configtree.Get(doc, "a.b.1.c")
	assert.False(t, ok)

	_, ok = configtree.Get(doc, "a.x")
	assert.False(t, ok)
}

func TestCloneNumbers(t *testing.T) {
	doc := mustDoc(t, `{"shipping":{"fee":12.5}}`)

	clone := configtree.Clone(doc)
	clone["shipping"].(map[string]any)["fee"] = 0.0

	v, _ := configtree.Get(doc, "shipping.fee")
	assert.Equal(t, 12.5, v)
}
