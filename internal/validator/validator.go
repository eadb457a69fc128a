// Package validator checks normalized candidate records against the field
// schema registry before anything is persisted.
package validator

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/schema"
)

// Validator validates candidate records. It is stateless and safe for
// concurrent use.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRecord checks every populated field against its schema
// constraints and returns one message per violation, in schema order.
// An empty slice means the record is valid. Validation does not
// short-circuit: the caller joins all messages into one row failure.
func (v *Validator) ValidateRecord(record domain.CandidateRecord) []string {
	var errs []string

	for _, def := range schema.Fields() {
		value, present := record[def.Name]
		if !present || strings.TrimSpace(value) == "" {
			if def.Required {
				errs = append(errs, fmt.Sprintf("%s is required", def.Name))
			}
			continue
		}

		if err := validation.Validate(value, rulesFor(def)...); err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}

// rulesFor builds the ozzo rule chain for one field definition. Rules run
// in order, so an overlong value reports its length error before any
// kind-specific check.
func rulesFor(def schema.FieldDefinition) []validation.Rule {
	var rules []validation.Rule

	if def.MaxLength > 0 {
		rules = append(rules, validation.RuneLength(0, def.MaxLength).
			Error(fmt.Sprintf("%s exceeds maximum length of %d", def.Name, def.MaxLength)))
	}

	switch def.Kind {
	case schema.KindEmail:
		rules = append(rules, validation.By(looseEmailRule(def.Name)))
	case schema.KindChoice:
		rules = append(rules, validation.In(toAnySlice(def.Choices)...).
			Error(fmt.Sprintf("Invalid choice for %s. Must be one of: %s", def.Name, strings.Join(def.Choices, ", "))))
	}

	return rules
}

// looseEmailRule is a permissive structural check: an @ with a dot
// somewhere after the last @. Deliberately weaker than RFC validation so
// real-world addresses are not rejected on import.
func looseEmailRule(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		at := strings.LastIndex(s, "@")
		if at < 0 || !strings.Contains(s[at+1:], ".") {
			return validation.NewError("invalid_email_format",
				fmt.Sprintf("Invalid email format for %s", field))
		}
		return nil
	}
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
