package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Tech", "tech"},
		{"spaces", "First Post", "first-post"},
		{"punctuation", "Hello, World", "hello-world"},
		{"multiple separators", "Go  &  GORM!!", "go-gorm"},
		{"leading trailing", "  --Trimmed--  ", "trimmed"},
		{"numbers", "Top 10 Tips", "top-10-tips"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}
