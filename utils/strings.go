package utils

import "strings"

// SanitizeFilename strips characters that break Content-Disposition
// headers or filesystems from a user-supplied name.
func SanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", "\"", "_", "<", "_", ">", "_",
		"|", "_", " ", "_",
	)
	cleaned := replacer.Replace(strings.TrimSpace(name))
	if cleaned == "" {
		return "document"
	}
	return cleaned
}
