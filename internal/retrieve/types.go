// Package retrieve implements the context retrieval stage: deterministic
// query construction from pipeline state, similarity search through the
// knowledge searcher port, and plain-language summarization of the top hits.
package retrieve

import "context"

// PhoneGuide describes how to resolve an issue by phone.
type PhoneGuide struct {
	Number string `json:"number"`
	Hours  string `json:"hours,omitempty"`
	Script string `json:"script,omitempty"`
}

// OnlineGuide describes how to resolve an issue online.
type OnlineGuide struct {
	URL string `json:"url"`
	App string `json:"app,omitempty"`
}

// VisitGuide describes how to resolve an issue in person.
type VisitGuide struct {
	Place     string   `json:"place"`
	Documents []string `json:"documents,omitempty"`
}

// ActionGuide bundles the help channels attached to a knowledge chunk.
type ActionGuide struct {
	Phone  *PhoneGuide  `json:"phone,omitempty"`
	Online *OnlineGuide `json:"online,omitempty"`
	Visit  *VisitGuide  `json:"visit,omitempty"`
}

// Chunk is a scored passage returned by similarity search, with source
// attribution. Score is cosine similarity; higher is better, with no
// monotonicity guarantee across calls.
type Chunk struct {
	Text        string       `json:"text"`
	Source      string       `json:"source"`
	SourceURL   string       `json:"source_url,omitempty"`
	DocType     string       `json:"doc_type"`
	Topic       string       `json:"topic"`
	Score       float64      `json:"score"`
	ActionGuide *ActionGuide `json:"action_guide,omitempty"`
}

// Context is the retrieval stage result: the query used, the retrieved
// chunks in score order, and an optional plain-language summary.
type Context struct {
	Query   string  `json:"query"`
	Chunks  []Chunk `json:"retrieved_chunks"`
	Summary string  `json:"summary"`
}

// NewContext returns an empty retrieval context for the given query.
func NewContext(query string) *Context {
	return &Context{
		Query:  query,
		Chunks: []Chunk{},
	}
}

// Searcher is the similarity-search capability the retriever depends on.
// It is satisfied by the knowledge system.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]Chunk, error)
}
