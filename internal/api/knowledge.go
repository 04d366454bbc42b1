package api

import (
	"log/slog"
	"net/http"

	"github.com/iamdbstjd/DC-TermProject3/internal/contacts"
	"github.com/iamdbstjd/DC-TermProject3/internal/knowledge"
	"github.com/iamdbstjd/DC-TermProject3/pkg/handlers"
	"github.com/iamdbstjd/DC-TermProject3/pkg/routes"
)

// knowledgeHandler exposes corpus ingestion and store introspection.
type knowledgeHandler struct {
	sys      knowledge.System
	contacts contacts.System
	logger   *slog.Logger
}

func newKnowledgeHandler(
	sys knowledge.System,
	contacts contacts.System,
	logger *slog.Logger,
) *knowledgeHandler {
	return &knowledgeHandler{
		sys:      sys,
		contacts: contacts,
		logger:   logger.With("handler", "knowledge"),
	}
}

func (h *knowledgeHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/knowledge",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/stats", Handler: h.stats},
			{Method: "POST", Pattern: "/reload", Handler: h.reload},
		},
	}
}

// reloadResponse reports what a corpus ingestion pass produced.
type reloadResponse struct {
	Items    int `json:"items"`
	Contacts int `json:"contacts"`
}

// reload re-ingests the knowledge corpus and seeds the contact directory
// from its contact summary.
func (h *knowledgeHandler) reload(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Load(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	seeded := 0
	for organization, info := range result.Contacts {
		_, err := h.contacts.Upsert(r.Context(), contacts.UpsertCommand{
			Organization: organization,
			Phone:        info.Phone,
			Website:      info.Website,
			Hours:        info.Hours,
		})
		if err != nil {
			h.logger.WarnContext(r.Context(), "contact seed failed", "organization", organization, "error", err)
			continue
		}
		seeded++
	}

	handlers.RespondJSON(w, http.StatusOK, reloadResponse{
		Items:    result.Items,
		Contacts: seeded,
	})
}

// stats returns the chunk store contents summary.
func (h *knowledgeHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Stats(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
