package service

import (
	"bytes"
	"encoding/csv"
)

// TemplateFilename is the download name for the example import file.
const TemplateFilename = "lead_import_template_generic.csv"

// templateRows is a fixed, illustrative file covering the full target
// schema, header first. Column names deliberately differ from the field
// names to show that arbitrary source columns can be mapped.
var templateRows = [][]string{
	{
		"company_name", "contact_person", "contact_title", "email",
		"phone", "phone_type", "secondary_phone", "secondary_phone_type",
		"street_address", "city", "state", "zip_code",
		"business_type", "lead_status", "notes",
	},
	{
		"Example Corp", "John Smith", "Manager", "john@example.com",
		"(555) 123-4567", "work", "(555) 234-5678", "mobile",
		"123 Main St", "Houston", "TX", "77001",
		"Oil & Gas", "open", "Contact from trade show",
	},
	{
		"Sample Industries", "Jane Doe", "Director", "jane@sample.com",
		"555.987.6543", "mobile", "", "",
		"456 Oak Ave", "Dallas", "TX", "75201",
		"Secondary Containment", "qualified", "Referral from existing client",
	},
}

// Template returns the example CSV content and its download filename.
func (s *ImportService) Template() ([]byte, string) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.WriteAll(templateRows)
	w.Flush()
	return buf.Bytes(), TemplateFilename
}
