package preset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mikocoral05/viscera/constants"
)

// BuildRecordSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map for the records a category's preset emits. Used to validate serialized
// records before they are persisted or exported.
func BuildRecordSchema(cat constants.Category) (map[string]any, bool) {
	var props map[string]any
	required := []string{"category"}

	switch cat {
	case constants.MobileReceipt:
		props = map[string]any{
			"platform":  map[string]any{"type": "string", "minLength": 1},
			"amount":    numberProp(),
			"date":      dateTimeProp(),
			"reference": map[string]any{"type": "string", "pattern": `^[A-Za-z0-9]+$`},
			"phone":     map[string]any{"type": "string"},
			"receiver":  map[string]any{"type": "string"},
			"sender":    map[string]any{"type": "string"},
		}
		required = append(required, "platform")
	case constants.BankReceipt:
		props = map[string]any{
			"reference":  map[string]any{"type": "string", "pattern": `^[A-Za-z0-9]+$`},
			"sender":     map[string]any{"type": "string"},
			"receiver":   map[string]any{"type": "string"},
			"account_no": map[string]any{"type": "string"},
			"amount":     numberProp(),
			"currency":   map[string]any{"type": "string", "minLength": 1},
			"date":       dateTimeProp(),
			"remarks":    map[string]any{"type": "string"},
		}
	case constants.IDCard:
		props = map[string]any{
			"full_name":   map[string]any{"type": "string"},
			"id_number":   map[string]any{"type": "string"},
			"birth_date":  dateTimeProp(),
			"gender":      map[string]any{"type": "string", "enum": []string{"M", "F", "Male", "Female"}},
			"nationality": map[string]any{"type": "string"},
			"address":     map[string]any{"type": "string"},
		}
	case constants.InvoiceOrBill:
		props = map[string]any{
			"invoice_no":   map[string]any{"type": "string"},
			"total_amount": numberProp(),
			"currency":     map[string]any{"type": "string", "minLength": 1},
			"due_date":     dateTimeProp(),
			"bill_date":    dateTimeProp(),
			"vendor":       map[string]any{"type": "string"},
			"client":       map[string]any{"type": "string"},
		}
	case constants.TransactionScreenshot:
		props = map[string]any{
			"balance":          numberProp(),
			"account_no":       map[string]any{"type": "string"},
			"transaction_date": dateTimeProp(),
		}
	default:
		return nil, false
	}

	props["category"] = map[string]any{"const": string(cat)}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}, true
}

func numberProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}

func dateTimeProp() map[string]any {
	return map[string]any{"type": "string", "format": "date-time"}
}

// ValidateRecord serializes rec and checks it against its category schema.
func ValidateRecord(rec Record) error {
	schemaMap, ok := BuildRecordSchema(rec.Tag())
	if !ok {
		return fmt.Errorf("no schema for category %q", rec.Tag())
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return validateJSONAgainstSchema(schemaMap, data)
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
