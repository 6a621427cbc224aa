package storage

import (
	"strings"
	"testing"
)

func TestNewKey_SanitizesWhitespace(t *testing.T) {
	key := NewKey("my tattoo  sketch.png")
	if strings.ContainsAny(key, " \t\n") {
		t.Errorf("key contains whitespace: %q", key)
	}
	if !strings.HasSuffix(key, "my-tattoo-sketch.png") {
		t.Errorf("expected sanitized name suffix, got %q", key)
	}
}

func TestNewKey_StripsDirectoryComponents(t *testing.T) {
	for _, name := range []string{"../../etc/passwd", "/abs/path/pic.jpg", `..\..\win\pic.jpg`} {
		key := NewKey(name)
		if strings.Contains(key, "/") || strings.Contains(key, `\`) {
			t.Errorf("key %q from %q contains a path separator", key, name)
		}
	}
}

func TestNewKey_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := NewKey("same-name.png")
		if seen[key] {
			t.Fatalf("duplicate key generated: %q", key)
		}
		seen[key] = true
	}
}

func TestNewKey_EmptyName(t *testing.T) {
	key := NewKey("")
	if !strings.HasSuffix(key, "-file") {
		t.Errorf("expected fallback name for empty input, got %q", key)
	}
}
