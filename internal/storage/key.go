package storage

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// NewKey builds a collision-resistant storage key from an uploaded file's
// original name: millisecond timestamp, a random component, and the name
// with whitespace collapsed to dashes so the key never splits on spaces.
func NewKey(originalName string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	rand := uuid.NewString()[:8]
	return ts + "-" + rand + "-" + sanitizeName(originalName)
}

func sanitizeName(name string) string {
	// Drop any client-supplied directory components.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	var b strings.Builder
	lastDash := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
			continue
		}
		lastDash = false
		b.WriteRune(r)
	}
	return b.String()
}
