// Command generate runs entc over the purchase-order schema. The generated
// client lands in gen/ent, outside the tracked tree; run it from the module
// root after changing db/ent/schema.
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "ent",
			Schema:  "ent/schema",
		},
	)
	if err != nil {
		log.Fatalf("generating purchase-order ent client: %v", err)
	}
}
