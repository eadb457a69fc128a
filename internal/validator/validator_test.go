package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/validator"
)

func TestValidateRecord(t *testing.T) {
	v := validator.NewValidator()

	t.Run("valid record has no errors", func(t *testing.T) {
		record := domain.CandidateRecord{
			"name":        "Acme Corp",
			"email":       "info@acme.com",
			"phone":       "(555) 123-4567",
			"phone_label": "work",
			"type":        "Oil & Gas",
			"lead_status": "open",
		}

		assert.Empty(t, v.ValidateRecord(record))
	})

	t.Run("missing required name", func(t *testing.T) {
		record := domain.CandidateRecord{"city": "Houston"}

		errs := v.ValidateRecord(record)

		assert.Equal(t, []string{"name is required"}, errs)
	})

	t.Run("blank required name", func(t *testing.T) {
		record := domain.CandidateRecord{"name": "   "}

		errs := v.ValidateRecord(record)

		assert.Equal(t, []string{"name is required"}, errs)
	})

	t.Run("value exceeding max length", func(t *testing.T) {
		record := domain.CandidateRecord{"name": strings.Repeat("x", 101)}

		errs := v.ValidateRecord(record)

		assert.Equal(t, []string{"name exceeds maximum length of 100"}, errs)
	})

	t.Run("optional blank fields are not errors", func(t *testing.T) {
		record := domain.CandidateRecord{"name": "Acme", "city": ""}

		assert.Empty(t, v.ValidateRecord(record))
	})

	t.Run("email structure", func(t *testing.T) {
		tests := []struct {
			email string
			valid bool
		}{
			{"john@example.com", true},
			{"john.smith@sub.example.co", true},
			{"weird@but@ok.example.com", true},
			{"no-at-sign.com", false},
			{"john@example", false},
			{"dot.before@at", false},
		}
		for _, tt := range tests {
			t.Run(tt.email, func(t *testing.T) {
				record := domain.CandidateRecord{"name": "Acme", "email": tt.email}
				errs := v.ValidateRecord(record)
				if tt.valid {
					assert.Empty(t, errs)
				} else {
					assert.Equal(t, []string{"Invalid email format for email"}, errs)
				}
			})
		}
	})

	t.Run("choice membership is case-sensitive after normalization", func(t *testing.T) {
		record := domain.CandidateRecord{"name": "Acme", "lead_status": "Open"}

		errs := v.ValidateRecord(record)

		assert.Equal(t, []string{"Invalid choice for lead_status. Must be one of: open, qualified, proposal, closed"}, errs)
	})

	t.Run("collects errors across fields in schema order", func(t *testing.T) {
		record := domain.CandidateRecord{
			"name":  strings.Repeat("x", 101),
			"email": "not-an-email",
			"type":  "Bakery",
		}

		errs := v.ValidateRecord(record)

		assert.Equal(t, []string{
			"name exceeds maximum length of 100",
			"Invalid email format for email",
			"Invalid choice for type. Must be one of: " + strings.Join(domain.BusinessTypeOptions, ", "),
		}, errs)
	})
}

func BenchmarkValidateRecord(b *testing.B) {
	v := validator.NewValidator()
	record := domain.CandidateRecord{
		"name":        "Acme Corp",
		"email":       "info@acme.com",
		"phone":       "(555) 123-4567",
		"phone_label": "work",
		"type":        "Oil & Gas",
		"lead_status": "open",
		"city":        "Houston",
		"state":       "TX",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.ValidateRecord(record)
	}
}
