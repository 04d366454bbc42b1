package query_test

import (
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/pkg/query"
)

func projection() *query.ProjectionMap {
	return query.NewProjectionMap("dochelper", "analysis_history", "h").
		Project("id", "id").
		Project("doc_type", "docType").
		Project("analyzed_at", "analyzedAt")
}

func TestBuild(t *testing.T) {
	t.Run("no conditions", func(t *testing.T) {
		sql, args := query.NewBuilder(projection()).Build()

		want := "SELECT h.id, h.doc_type, h.analyzed_at FROM dochelper.analysis_history h"
		if sql != want {
			t.Errorf("Build() sql = %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("Build() args = %v, want none", args)
		}
	})

	t.Run("condition and default sort", func(t *testing.T) {
		docType := "세금_통지서"
		sql, args := query.NewBuilder(
			projection(),
			query.SortField{Field: "analyzedAt", Descending: true},
		).
			WhereEquals("docType", docType).
			Build()

		want := "SELECT h.id, h.doc_type, h.analyzed_at FROM dochelper.analysis_history h" +
			" WHERE h.doc_type = $1 ORDER BY h.analyzed_at DESC"
		if sql != want {
			t.Errorf("Build() sql = %q, want %q", sql, want)
		}
		if len(args) != 1 || args[0] != docType {
			t.Errorf("Build() args = %v, want [%s]", args, docType)
		}
	})
}

func TestBuildCount(t *testing.T) {
	sql, args := query.NewBuilder(projection()).
		WhereEquals("docType", "건강보험료_고지서").
		BuildCount()

	want := "SELECT COUNT(*) FROM dochelper.analysis_history h WHERE h.doc_type = $1"
	if sql != want {
		t.Errorf("BuildCount() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("BuildCount() args = %v, want one", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(projection()).BuildPage(2, 10)

	want := "SELECT h.id, h.doc_type, h.analyzed_at FROM dochelper.analysis_history h LIMIT 10 OFFSET 10"
	if sql != want {
		t.Errorf("BuildPage() sql = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(projection()).BuildSingle("id", "abc-123")

	want := "SELECT h.id, h.doc_type, h.analyzed_at FROM dochelper.analysis_history h WHERE h.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc-123" {
		t.Errorf("BuildSingle() args = %v, want [abc-123]", args)
	}
}

func TestBuildSingleOrNull(t *testing.T) {
	sql, _ := query.NewBuilder(projection()).
		WhereEquals("docType", "기타").
		BuildSingleOrNull()

	want := "SELECT h.id, h.doc_type, h.analyzed_at FROM dochelper.analysis_history h" +
		" WHERE h.doc_type = $1 LIMIT 1"
	if sql != want {
		t.Errorf("BuildSingleOrNull() sql = %q, want %q", sql, want)
	}
}
