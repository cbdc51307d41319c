package runbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToRawURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "blob URL",
			input:    "https://github.com/acme/runbooks/blob/main/pods/crash.md",
			expected: "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/pods/crash.md",
		},
		{
			name:     "www blob URL",
			input:    "https://www.github.com/acme/runbooks/blob/main/crash.md",
			expected: "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/crash.md",
		},
		{
			name:     "already raw",
			input:    "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/crash.md",
			expected: "https://raw.githubusercontent.com/acme/runbooks/refs/heads/main/crash.md",
		},
		{
			name:     "non-github host unchanged",
			input:    "https://runbooks.internal.example.com/crash.md",
			expected: "https://runbooks.internal.example.com/crash.md",
		},
		{
			name:     "repo root without blob segment unchanged",
			input:    "https://github.com/acme/runbooks",
			expected: "https://github.com/acme/runbooks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertToRawURL(tt.input))
		})
	}
}

func TestValidateURL(t *testing.T) {
	allowed := []string{"github.com", "raw.githubusercontent.com"}

	tests := []struct {
		name    string
		url     string
		domains []string
		wantErr bool
	}{
		{"allowed https", "https://github.com/acme/rb/blob/main/a.md", allowed, false},
		{"allowed www variant", "https://www.github.com/acme/rb/blob/main/a.md", allowed, false},
		{"raw host", "https://raw.githubusercontent.com/acme/rb/refs/heads/main/a.md", allowed, false},
		{"disallowed domain", "https://evil.example.com/a.md", allowed, true},
		{"ftp scheme", "ftp://github.com/a.md", allowed, true},
		{"file scheme", "file:///etc/passwd", allowed, true},
		{"empty allow-list accepts any https", "https://anything.example.com/a.md", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url, tt.domains)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
