package storage

import (
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PutInput struct {
	Folder      string // logical subdirectory, e.g. "thumbnails" or "details"
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// objectKey builds a collision-resistant key: millisecond timestamp prefix
// plus the sanitized original filename. Names that sanitize away entirely
// fall back to a uuid so the key never degenerates to just the timestamp.
func objectKey(folder, filename string) string {
	name := unsafeChars.ReplaceAllString(filename, "_")
	base := name
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	if !hasAlnum(base) {
		name = uuid.NewString() + safeExt(filename)
	}
	key := strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + name
	if folder != "" {
		key = strings.Trim(folder, "/") + "/" + key
	}
	return key
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}

func safeExt(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	ext := strings.ToLower(filename[i:])
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}
