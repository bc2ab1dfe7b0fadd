package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Form field kinds an editor can attach to an event
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldRadio    = "radio"
	FieldCheckbox = "checkbox"
)

// FormField is one editor-defined input on an enquiry form. Options holds a
// comma separated list for select and radio fields.
type FormField struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Options  string `json:"options,omitempty"`
}

// OptionList splits Options into trimmed, non-empty values
func (f FormField) OptionList() []string {
	parts := strings.Split(f.Options, ",")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

// ValidateValue checks a submitted value against the field's definition. All
// kinds share the same required check; choice kinds additionally pin the
// value to the configured options.
func (f FormField) ValidateValue(value interface{}) error {
	switch f.Type {
	case FieldCheckbox:
		// A checkbox arrives as a bool; required means it must be checked
		checked, _ := value.(bool)
		if f.Required && !checked {
			return fmt.Errorf("%s must be accepted", f.Label)
		}
		return nil
	case FieldSelect, FieldRadio:
		text, _ := value.(string)
		if text == "" {
			if f.Required {
				return fmt.Errorf("%s is required", f.Label)
			}
			return nil
		}
		for _, option := range f.OptionList() {
			if text == option {
				return nil
			}
		}
		return fmt.Errorf("%s must be one of its options", f.Label)
	default:
		text, _ := value.(string)
		if f.Required && strings.TrimSpace(text) == "" {
			return fmt.Errorf("%s is required", f.Label)
		}
		return nil
	}
}

// FormFields is a JSONB-backed list of field definitions
type FormFields []FormField

// Value implements driver.Valuer
func (f FormFields) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form fields: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (f *FormFields) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported form fields type %T", value)
	}
	return json.Unmarshal(data, f)
}
