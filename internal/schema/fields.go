// Package schema declares the importable lead fields and normalizes raw
// source rows against them. The registry is fixed at process start; there
// is no mutation API.
package schema

import "github.com/boonewh/pathsix-crm/internal/domain"

// FieldKind selects the normalization and validation rules for a field.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindText   FieldKind = "text"
	KindEmail  FieldKind = "email"
	KindPhone  FieldKind = "phone"
	KindChoice FieldKind = "choice"
)

// NameField is the anchor identity of a lead. Its presence is enforced at
// normalization time, not by the generic required-field check.
const NameField = "name"

// FieldDefinition describes one importable lead field.
type FieldDefinition struct {
	Name        string
	Required    bool
	Kind        FieldKind
	MaxLength   int // 0 means unbounded
	Choices     []string
	Description string
}

// leadFields is the full importable schema, in the order shown to mapping
// UIs and used by the template download.
var leadFields = []FieldDefinition{
	{Name: "name", Required: true, Kind: KindString, MaxLength: 100,
		Description: "Company or organization name"},
	{Name: "contact_person", Kind: KindString, MaxLength: 100,
		Description: "Primary contact person name"},
	{Name: "contact_title", Kind: KindString, MaxLength: 100,
		Description: "Contact person job title"},
	{Name: "email", Kind: KindEmail, MaxLength: 120,
		Description: "Primary email address"},
	{Name: "phone", Kind: KindPhone, MaxLength: 20,
		Description: "Primary phone number"},
	{Name: "phone_label", Kind: KindChoice, Choices: domain.PhoneLabels,
		Description: "Primary phone type (work, mobile, home, fax, other)"},
	{Name: "secondary_phone", Kind: KindPhone, MaxLength: 20,
		Description: "Secondary phone number"},
	{Name: "secondary_phone_label", Kind: KindChoice, Choices: domain.PhoneLabels,
		Description: "Secondary phone type"},
	{Name: "address", Kind: KindString, MaxLength: 255,
		Description: "Street address"},
	{Name: "city", Kind: KindString, MaxLength: 100,
		Description: "City name"},
	{Name: "state", Kind: KindString, MaxLength: 100,
		Description: "State or province"},
	{Name: "zip", Kind: KindString, MaxLength: 20,
		Description: "ZIP or postal code"},
	{Name: "notes", Kind: KindText,
		Description: "Additional notes or comments"},
	{Name: "type", Kind: KindChoice, Choices: domain.BusinessTypeOptions,
		Description: "Business or industry type"},
	{Name: "lead_status", Kind: KindChoice, Choices: domain.LeadStatusOptions,
		Description: "Current lead status (open, qualified, proposal, closed)"},
}

var fieldsByName = func() map[string]FieldDefinition {
	m := make(map[string]FieldDefinition, len(leadFields))
	for _, f := range leadFields {
		m[f.Name] = f
	}
	return m
}()

// Definition looks up one field by name.
func Definition(name string) (FieldDefinition, bool) {
	def, ok := fieldsByName[name]
	return def, ok
}

// IsField reports whether name is an importable lead field.
func IsField(name string) bool {
	_, ok := fieldsByName[name]
	return ok
}

// Fields returns the full registry in declaration order.
func Fields() []FieldDefinition {
	out := make([]FieldDefinition, len(leadFields))
	copy(out, leadFields)
	return out
}

// RequiredFields returns the names of fields a mapping must cover.
func RequiredFields() []string {
	var names []string
	for _, f := range leadFields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}
