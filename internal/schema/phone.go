package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// CleanPhoneNumber canonicalizes a North American phone number to the form
// "(AAA) PPP-SSSS". Punctuation and whitespace are ignored; an optional
// leading country code 1 (or +1) is stripped. Returns "" when no valid
// ten-digit number can be recovered.
func CleanPhoneNumber(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return ""
	}
	return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
}
