package api

import (
	"net/http"

	"github.com/iamdbstjd/DC-TermProject3/internal/config"
	"github.com/iamdbstjd/DC-TermProject3/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	analyze := newAnalyzeHandler(
		domain.Pipeline,
		domain.History,
		runtime.Storage,
		runtime.Logger,
		cfg.API.MaxUploadSizeBytes(),
	)

	know := newKnowledgeHandler(domain.Knowledge, domain.Contacts, runtime.Logger)
	store := newStorageHandler(runtime.Storage, runtime.Logger)

	routes.Register(
		mux,
		analyze.routes(),
		domain.History.Handler().Routes(),
		domain.Contacts.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
		know.routes(),
		store.routes(),
	)
}
