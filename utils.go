package everyuuid

import "strings"

// maxIndexDigits is the number of base 10 digits in [MaxIndex].
const maxIndexDigits = 37

func formatIndexForDisplay(index Index) string {
	raw := index.String()
	if len(raw) >= maxIndexDigits {
		return raw
	}
	return strings.Repeat("0", maxIndexDigits-len(raw)) + raw
}

func looksLikeIdentifier(s string) bool {
	return len(s) == IdentifierLength && strings.Contains(s, "-")
}
