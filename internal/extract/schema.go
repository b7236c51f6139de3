package extract

// BuildOrderJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a fully-assembled order record. The pipeline checks
// each record against it before persisting, as a structural gate on top of
// field-level validation.
func BuildOrderJSONSchema() map[string]any {
	props := map[string]any{
		"id":               map[string]any{"type": "string"},
		"order_number":     map[string]any{"type": "string", "minLength": 1},
		"product":          map[string]any{"type": "string"},
		"quantity":         map[string]any{"type": "string"},
		"unit":             map[string]any{"type": "string"},
		"due_date":         map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"retailer_name":    map[string]any{"type": "string"},
		"retailer_email":   map[string]any{"type": "string"},
		"retailer_address": map[string]any{"type": "string"},
		"raw_text":         map[string]any{"type": "string"},
		"email_hash":       map[string]any{"type": "string", "pattern": `^[0-9a-f]{64}$`},
		"duplicate_flag":   map[string]any{"type": "boolean"},
		"confidence_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
		"priority_level":   map[string]any{"type": "string", "enum": []string{"Normal", "Urgent"}},
		"order_status":     map[string]any{"type": "string", "enum": []string{"Approved", "Needs Review", "Rejected"}},
		"source_of_order":  map[string]any{"type": "string"},
		"remarks":          map[string]any{"type": "string"},
		"client_email_subject": map[string]any{"type": "string"},
		"created_at":           map[string]any{"type": "string"},
		"processed_at":         map[string]any{"type": "string"},
	}
	required := []string{"email_hash", "raw_text", "confidence_score", "order_status", "priority_level"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties":           props,
		"required":             required,
	}
}
