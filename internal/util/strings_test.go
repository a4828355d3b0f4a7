package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrNone(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{
			name:  "nil slice returns (none)",
			items: nil,
			want:  "(none)",
		},
		{
			name:  "empty slice returns (none)",
			items: []string{},
			want:  "(none)",
		},
		{
			name:  "single item returns item",
			items: []string{"linux"},
			want:  "linux",
		},
		{
			name:  "multiple items joined with comma",
			items: []string{"low", "medium", "high"},
			want:  "low, medium, high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JoinOrNone(tt.items)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinOrDefault(t *testing.T) {
	assert.Equal(t, "any", JoinOrDefault(nil, "any"))
	assert.Equal(t, "a, b", JoinOrDefault([]string{"a", "b"}, "any"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "host", Pluralize(1, "host", "hosts"))
	assert.Equal(t, "hosts", Pluralize(0, "host", "hosts"))
	assert.Equal(t, "hosts", Pluralize(2, "host", "hosts"))
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "1 alert", CountLabel(1, "alert", "alerts"))
	assert.Equal(t, "12 alerts", CountLabel(12, "alert", "alerts"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "sshd", 10, "sshd"},
		{"exact", "sshd", 4, "sshd"},
		{"cut", "Process: /usr/sbin/sshd", 10, "Process: …"},
		{"zero width", "anything", 0, ""},
		{"wide runes", "日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), tt.width)
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, 6, Width(PadRight("日本", 6)))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
	assert.Equal(t, "", FirstNonEmpty())
}
