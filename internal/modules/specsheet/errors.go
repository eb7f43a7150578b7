package specsheet

import "strings"

// CategorizeError maps a pipeline failure to a human-readable message by
// substring matching on the underlying error text, mirroring the
// network/timeout/memory buckets users already know from the old export
// dialog.
func CategorizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return "The export timed out. Please try again."
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection") || strings.Contains(msg, "fetch"):
		return "A network error occurred. Check your connection and try again."
	case strings.Contains(msg, "memory"):
		return "Not enough memory to build the spec sheet. Try again with fewer images."
	default:
		return "Spec sheet generation failed."
	}
}
