// Package colid derives table-column ids from admin-entered labels.
package colid

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// FromLabel lower-cases the label and strips everything outside [a-z0-9].
// Labels that produce an empty or numeric-only id, or that contain
// characters outside ASCII, get a generated fallback id instead: without
// the fallback a non-Latin label would yield an id unusable as a URL
// segment or DOM id.
func FromLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	id := nonAlnum.ReplaceAllString(s, "")
	if id == "" || numericOnly(id) || !isASCII(s) {
		return fallbackID()
	}
	return id
}

// Valid reports whether id is already a well-formed column id, i.e.
// FromLabel would return it unchanged.
func Valid(id string) bool {
	return id != "" && !numericOnly(id) && nonAlnum.ReplaceAllString(id, "") == id
}

func numericOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

func fallbackID() string {
	return "col" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
