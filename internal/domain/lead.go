package domain

import (
	"strings"
	"time"
)

// Lead represents a sales lead entity. Leads are always scoped to a tenant
// and soft-deleted rather than removed.
type Lead struct {
	ID                  string     `json:"id"`
	TenantID            string     `json:"tenant_id"`
	Name                string     `json:"name"`
	ContactPerson       *string    `json:"contact_person,omitempty"`
	ContactTitle        *string    `json:"contact_title,omitempty"`
	Email               *string    `json:"email,omitempty"`
	Phone               *string    `json:"phone,omitempty"`
	PhoneLabel          *string    `json:"phone_label,omitempty"`
	SecondaryPhone      *string    `json:"secondary_phone,omitempty"`
	SecondaryPhoneLabel *string    `json:"secondary_phone_label,omitempty"`
	Address             *string    `json:"address,omitempty"`
	City                *string    `json:"city,omitempty"`
	State               *string    `json:"state,omitempty"`
	Zip                 *string    `json:"zip,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	Type                string     `json:"type"`
	LeadStatus          string     `json:"lead_status"`
	ConvertedOn         *time.Time `json:"converted_on,omitempty"`
	CreatedBy           string     `json:"created_by"`
	AssignedTo          *string    `json:"assigned_to,omitempty"`
	UpdatedBy           *string    `json:"updated_by,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
}

// BusinessTypeOptions is the canonical choice set for the lead "type" field.
// "None" is the sentinel used when the source value is absent or unrecognized.
var BusinessTypeOptions = []string{
	"Oil & Gas",
	"Secondary Containment",
	"Construction",
	"Environmental",
	"Manufacturing",
	"Utilities",
	"Government",
	"Other",
	"None",
}

// LeadStatusOptions is the canonical choice set for the lead_status field
// on import.
var LeadStatusOptions = []string{"open", "qualified", "proposal", "closed"}

// LeadStatusTransitions are the statuses accepted by the lead update
// endpoint. Moving into "converted" stamps ConvertedOn.
var LeadStatusTransitions = []string{"open", "converted", "closed", "lost"}

// PhoneLabels is the canonical choice set for phone label fields.
var PhoneLabels = []string{"work", "mobile", "home", "fax", "other"}

// Defaults substituted by the import normalizer.
const (
	DefaultBusinessType        = "None"
	DefaultLeadStatus          = "open"
	DefaultPhoneLabel          = "work"
	DefaultSecondaryPhoneLabel = "mobile"
)

// CanonicalChoice resolves value against options case-insensitively and
// returns the canonical casing. The second return is false when value does
// not match any option.
func CanonicalChoice(value string, options []string) (string, bool) {
	for _, opt := range options {
		if strings.EqualFold(value, opt) {
			return opt, true
		}
	}
	return "", false
}

// IsLeadStatusTransition reports whether status is a valid target for a
// lead status update.
func IsLeadStatusTransition(status string) bool {
	for _, s := range LeadStatusTransitions {
		if s == status {
			return true
		}
	}
	return false
}
