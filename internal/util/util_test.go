package util

import (
	"encoding/base64"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "upload limit", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
		{name: "oversized upload", bytes: 6 * 1024 * 1024, expected: "6.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	const want = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	if got := SHA256Hex("test"); got != want {
		t.Fatalf("SHA256Hex(test) = %s, want %s", got, want)
	}
}

func TestRandomToken(t *testing.T) {
	t.Parallel()

	first, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken returned error: %v", err)
	}
	second, err := RandomToken(32)
	if err != nil {
		t.Fatalf("RandomToken returned error: %v", err)
	}

	if first == second {
		t.Fatal("RandomToken returned the same token twice")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(first)
	if err != nil {
		t.Fatalf("token is not URL-safe base64: %v", err)
	}
	if len(decoded) != 32 {
		t.Fatalf("decoded length = %d, want 32", len(decoded))
	}
}
