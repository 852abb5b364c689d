package html

import "strings"

var escaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// Escape encodes s for use in HTML text and double-quoted attribute values.
// Single quotes are left as is, invalid UTF-8 is replaced with U+FFFD and
// existing entities are encoded again.
func Escape(s string) string {
	return escaper.Replace(strings.ToValidUTF8(s, "\uFFFD"))
}
