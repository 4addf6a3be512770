package extractor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	content := "[SAHAL]\n$50.00 ayaad u dirtay John Doe("
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != content {
		t.Errorf("text files should pass through untouched, got %q", text)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFromUploadText(t *testing.T) {
	text, err := FromUpload("export.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello" {
		t.Errorf("got %q, want hello", text)
	}
}

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain sentence", "Waxaad $25.00 ka heshay Jane Smith(252611234567)", true},
		{"too short", "hi", false},
		{"mostly control bytes", strings.Repeat("\x00\x01\x02", 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.text); got != tt.want {
				t.Errorf("isReadableText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
