package contacts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iamdbstjd/DC-TermProject3/pkg/handlers"
	"github.com/iamdbstjd/DC-TermProject3/pkg/routes"
)

// Handler provides HTTP endpoints for contact directory operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "contacts"),
	}
}

// Routes returns the route group definition for contact endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/contacts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.GetAll},
			{Method: "GET", Pattern: "/{organization}", Handler: h.Get},
			{Method: "PUT", Pattern: "", Handler: h.Upsert},
		},
	}
}

// GetAll returns the full contact directory.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.sys.GetAll(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, contacts)
}

// Get returns the contact for an organization path parameter.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	organization := r.PathValue("organization")
	if organization == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	contact, err := h.sys.Get(r.Context(), organization)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, contact)
}

// Upsert creates or refreshes a contact from a JSON body.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var cmd UpsertCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if cmd.Organization == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	contact, err := h.sys.Upsert(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, contact)
}
