package formatting

// Truncate limits s to at most n runes. Truncation is rune-based so
// multibyte text is never split mid-character.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
