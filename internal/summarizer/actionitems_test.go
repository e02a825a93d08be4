package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseActionItems(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"numbered", "1. Alice to write tests.\n2. Bob to deploy.", []string{"Alice to write tests.", "Bob to deploy."}},
		{"bullets", "- Send notes\n* Book room\n  -   Review PR  ", []string{"Send notes", "Book room", "Review PR"}},
		{"header dropped", "Action Items:\n1. Ship it\nACTION ITEMS: none", []string{"Ship it"}},
		{"blank lines", "\n\n  \nCall vendor\n\n", []string{"Call vendor"}},
		{"markers only", "1.\n- \n***", []string{}},
		{"duplicates kept", "- Fix bug\n- Fix bug", []string{"Fix bug", "Fix bug"}},
		{"leading digits are stripped", "2026 roadmap review", []string{"roadmap review"}},
		{"windows newlines", "1. One\r\n2. Two\r\n", []string{"One", "Two"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseActionItems(tt.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
