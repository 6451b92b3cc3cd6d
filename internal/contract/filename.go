package contract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// SuggestedFilename returns the file name offered when saving a contract:
// "Termo {reservation} {year} {guest}.docx". Missing values fall back to
// "0", "0000" and "nome".
func SuggestedFilename(placeholders domain.Placeholders) string {
	return fmt.Sprintf("Termo %s %s %s.docx",
		placeholders.GetOrDefault(KeyReservationID, "0"),
		placeholders.GetOrDefault(KeyYear, "0000"),
		SanitizeName(placeholders.GetOrDefault(KeyGuestName, "nome")),
	)
}

// SanitizeName makes a guest name safe for a file name. ASCII letters and
// digits are kept, every other ASCII character becomes '_' and non-ASCII
// characters are dropped, so "José Á." becomes "Jos__".
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= utf8.RuneSelf:
			// dropped
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
