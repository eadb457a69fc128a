package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/tabular"
)

// ErrNameRequired is the hard normalization failure: a row whose mapped
// name column is blank or unmapped cannot identify a lead at all.
var ErrNameRequired = errors.New("Company name is required")

// Normalize builds a candidate record from one raw row by applying the
// caller's column mappings in order. Coercions that substitute or drop a
// value (unparseable phones, unknown choice values) are soft: they emit a
// warning and the row continues. The only hard failure is a missing name.
//
// When several mappings feed the same lead field, the last one wins.
func Normalize(row map[string]tabular.Cell, mappings []domain.ColumnMapping) (domain.CandidateRecord, []string, error) {
	record := make(domain.CandidateRecord)
	var warnings []string

	for _, m := range mappings {
		if m.LeadField == "" {
			continue
		}
		cell, ok := row[m.CSVColumn]
		if !ok || !cell.Set {
			continue
		}
		value := strings.TrimSpace(cell.Value)
		if value == "" {
			continue
		}

		def, known := Definition(m.LeadField)
		if known {
			var keep bool
			value, keep = coerce(def, value, cell.Value, &warnings)
			if !keep {
				continue
			}
		}
		record[m.LeadField] = value
	}

	if record[NameField] == "" {
		return nil, nil, ErrNameRequired
	}

	applyDependentDefaults(record)
	return record, warnings, nil
}

// coerce applies the field-kind-specific cleanup to a trimmed value. The
// second return is false when the value must be omitted from the record.
func coerce(def FieldDefinition, value, original string, warnings *[]string) (string, bool) {
	switch def.Kind {
	case KindPhone:
		cleaned := CleanPhoneNumber(value)
		if cleaned == "" {
			*warnings = append(*warnings, fmt.Sprintf("Invalid phone number format: %s", original))
			return "", false
		}
		return cleaned, true

	case KindEmail:
		return strings.ToLower(value), true

	case KindChoice:
		if canonical, ok := domain.CanonicalChoice(value, def.Choices); ok {
			return canonical, true
		}
		return substituteChoiceDefault(def.Name, value, warnings), true

	default:
		return value, true
	}
}

// substituteChoiceDefault replaces an unrecognized choice value with the
// field's own default and records a warning naming both.
func substituteChoiceDefault(field, value string, warnings *[]string) string {
	switch field {
	case "type":
		*warnings = append(*warnings, fmt.Sprintf("Unknown business type '%s', using '%s'", value, domain.DefaultBusinessType))
		return domain.DefaultBusinessType
	case "lead_status":
		*warnings = append(*warnings, fmt.Sprintf("Unknown lead status '%s', using '%s'", value, domain.DefaultLeadStatus))
		return domain.DefaultLeadStatus
	default:
		*warnings = append(*warnings, fmt.Sprintf("Unknown phone label '%s', using '%s'", value, domain.DefaultPhoneLabel))
		return domain.DefaultPhoneLabel
	}
}

// applyDependentDefaults fills fields whose default depends on what the
// row actually provided: phone labels track their phone, and the choice
// fields fall back to their sentinels when entirely absent.
func applyDependentDefaults(record domain.CandidateRecord) {
	if _, ok := record["phone_label"]; !ok {
		if _, hasPhone := record["phone"]; hasPhone {
			record["phone_label"] = domain.DefaultPhoneLabel
		}
	}
	if _, ok := record["secondary_phone_label"]; !ok {
		if _, hasPhone := record["secondary_phone"]; hasPhone {
			record["secondary_phone_label"] = domain.DefaultSecondaryPhoneLabel
		}
	}
	if _, ok := record["type"]; !ok {
		record["type"] = domain.DefaultBusinessType
	}
	if _, ok := record["lead_status"]; !ok {
		record["lead_status"] = domain.DefaultLeadStatus
	}
}
