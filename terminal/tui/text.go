package tui

// Truncate shortens s to maxLen runes, ending with … when cut
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// RuneLen returns display width (rune count, not byte count)
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
