package utils

// TruncateRunes cuts s down to at most max characters. The payment
// provider rejects descriptions longer than 25 characters.
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
