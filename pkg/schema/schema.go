package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const AdminEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "admin",
	"name": "event",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "entity", "type": "string"},
		{"name": "entity_id", "type": "string"},
		{"name": "actor", "type": "string"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "payload", "type": "string"}
	]
}`

const ProductFilterSchemaTextV1 = `{
	"type": "record",
	"namespace": "products",
	"name": "filter",
	"fields": [
		{"name": "product_name", "type": "string"},
		{"name": "blocked", "type": "boolean"}
	]
}`

type AdminEventV1 struct {
	EventID    string    `avro:"event_id"`
	Kind       string    `avro:"kind"`
	Entity     string    `avro:"entity"`
	EntityID   string    `avro:"entity_id"`
	Actor      string    `avro:"actor"`
	OccurredAt time.Time `avro:"occurred_at"`
	Payload    string    `avro:"payload"`
}

type ProductFilterV1 struct {
	ProductName string `avro:"product_name"`
	Blocked     bool   `avro:"blocked"`
}

// AdminEventV1Avro panics if the schema text is invalid.
func AdminEventV1Avro() avro.Schema {
	return avro.MustParse(AdminEventSchemaTextV1)
}

// ProductFilterV1Avro panics if the schema text is invalid.
func ProductFilterV1Avro() avro.Schema {
	return avro.MustParse(ProductFilterSchemaTextV1)
}
