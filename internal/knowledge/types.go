// Package knowledge manages the guidance corpus: it ingests the knowledge
// JSON document, embeds each item, persists the vectors in a local chunk
// store, and serves similarity search for the retrieval stage.
package knowledge

import (
	"strings"

	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
)

// Item is one entry of the knowledge corpus JSON document.
type Item struct {
	ID          string                `json:"id"`
	Text        string                `json:"text"`
	Domain      string                `json:"domain"`
	DocType     string                `json:"doc_type"`
	Scenario    string                `json:"scenario"`
	Topic       string                `json:"topic"`
	SourceName  string                `json:"source_name"`
	SourceURL   string                `json:"source_url"`
	ActionGuide *retrieve.ActionGuide `json:"action_guide,omitempty"`
}

// ContactInfo is one organization's contact summary from the corpus document.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Hours   string `json:"hours,omitempty"`
}

// Dataset is the knowledge corpus JSON document layout.
type Dataset struct {
	Version        string                 `json:"version,omitempty"`
	KnowledgeItems []Item                 `json:"knowledge_items"`
	ContactSummary map[string]ContactInfo `json:"contact_summary,omitempty"`
}

// LoadResult reports what an ingestion pass produced.
type LoadResult struct {
	Items    int                    `json:"items"`
	Contacts map[string]ContactInfo `json:"-"`
}

// Stats describes the current chunk store contents.
type Stats struct {
	Count   int    `json:"count"`
	Backend string `json:"backend"`
	Path    string `json:"path"`
}

// searchableText builds the embedded text for an item: the item body plus
// its help-channel details, so channel queries land on the right chunks.
func searchableText(item Item) string {
	parts := []string{item.Text}

	if g := item.ActionGuide; g != nil {
		if g.Phone != nil && g.Phone.Number != "" {
			parts = append(parts, "연락처: "+g.Phone.Number)
		}
		if g.Online != nil && g.Online.URL != "" {
			parts = append(parts, "홈페이지: "+g.Online.URL)
		}
		if g.Visit != nil && g.Visit.Place != "" {
			parts = append(parts, "방문: "+g.Visit.Place)
		}
	}

	return strings.Join(parts, " ")
}
