package formatting_test

import (
	"errors"
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/pkg/formatting"
)

type sample struct {
	Summary string `json:"summary"`
	Score   int    `json:"score"`
}

func TestParse(t *testing.T) {
	t.Run("direct JSON", func(t *testing.T) {
		got, err := formatting.Parse[sample](`{"summary":"납부 안내","score":42}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Summary != "납부 안내" || got.Score != 42 {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("direct JSON with whitespace", func(t *testing.T) {
		got, err := formatting.Parse[sample](`  {"summary":"padded","score":1}  `)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Summary != "padded" {
			t.Errorf("Summary = %q, want padded", got.Summary)
		}
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		input := "```json\n{\"summary\":\"fenced\",\"score\":7}\n```"
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Summary != "fenced" || got.Score != 7 {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("markdown fenced with surrounding text", func(t *testing.T) {
		input := "분석 결과입니다:\n```json\n{\"summary\":\"wrapped\",\"score\":5}\n```\n끝."
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Summary != "wrapped" || got.Score != 5 {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("invalid content returns ErrParseFailed", func(t *testing.T) {
		_, err := formatting.Parse[sample]("not json at all")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})

	t.Run("invalid JSON in code fence returns ErrParseFailed", func(t *testing.T) {
		input := "```json\n{broken\n```"
		_, err := formatting.Parse[sample](input)
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})

	t.Run("parses into map type", func(t *testing.T) {
		got, err := formatting.Parse[map[string]any](`{"key":"value"}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got["key"] != "value" {
			t.Errorf("got[key] = %v, want value", got["key"])
		}
	})
}
