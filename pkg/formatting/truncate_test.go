package formatting_test

import (
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/pkg/formatting"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"shorter than limit", "안내문", 10, "안내문"},
		{"exact length", "안내문", 3, "안내문"},
		{"truncates multibyte on rune boundary", "납부기한 안내", 4, "납부기한"},
		{"ascii", "notice", 3, "not"},
		{"zero limit", "안내문", 0, ""},
		{"negative limit", "안내문", -1, ""},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.Truncate(tt.input, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}
