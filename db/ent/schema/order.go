package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var reEmailHash = regexp.MustCompile(`^[0-9a-f]{64}$`)

var reEmailHashErr = errors.New("invalid email hash")

type PurchaseOrder struct{ ent.Schema }

func (PurchaseOrder) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "purchase_orders"},
	}
}

func (PurchaseOrder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("order_number").NotEmpty().Unique(),
		field.String("product").Optional().Nillable(),
		field.String("quantity").Optional().Nillable(),
		field.String("unit").Optional().Nillable(),
		field.String("due_date").Optional().Nillable(),
		field.String("retailer_name").Optional().Nillable(),
		field.String("retailer_email").Optional().Nillable(),
		field.String("retailer_address").Optional().Nillable(),
		field.Text("raw_text").NotEmpty().Immutable(),
		field.String("email_hash").NotEmpty().Unique().Immutable().
			Validate(func(s string) error {
				if reEmailHash.MatchString(s) {
					return nil
				}
				return reEmailHashErr
			}),
		field.Bool("duplicate_flag").Default(false),
		field.Float("confidence_score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,1)"}),
		field.String("priority_level").Default("Normal"),
		field.String("order_status"),
		field.String("source_of_order").Default("Email"),
		field.String("remarks").Optional().Nillable(),
		field.String("client_email_subject"),
		field.Time("created_at").Default(time.Now),
		field.Time("processed_at").Default(time.Now),
	}
}

func (PurchaseOrder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_status"),
	}
}
