package api

import (
	"fmt"

	"github.com/iamdbstjd/DC-TermProject3/internal/acquire"
	"github.com/iamdbstjd/DC-TermProject3/internal/classify"
	"github.com/iamdbstjd/DC-TermProject3/internal/config"
	"github.com/iamdbstjd/DC-TermProject3/internal/contacts"
	"github.com/iamdbstjd/DC-TermProject3/internal/embedding"
	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/history"
	"github.com/iamdbstjd/DC-TermProject3/internal/knowledge"
	"github.com/iamdbstjd/DC-TermProject3/internal/pipeline"
	"github.com/iamdbstjd/DC-TermProject3/internal/plan"
	"github.com/iamdbstjd/DC-TermProject3/internal/prompts"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
	"github.com/iamdbstjd/DC-TermProject3/internal/simplify"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts   prompts.System
	History   history.System
	Contacts  contacts.System
	Knowledge knowledge.System
	Pipeline  *pipeline.Runtime
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	db := runtime.Database.Connection()

	promptsSystem := prompts.New(db, runtime.Logger, runtime.Pagination)
	historySystem := history.New(db, runtime.Logger, runtime.Pagination, cfg.History.MaxEntries)
	contactsSystem := contacts.New(db, runtime.Logger)

	embedder, err := embedding.New(embedding.Config{
		BaseURL:    cfg.Embedding.BaseURL,
		APIKey:     cfg.Embedding.APIKey,
		Model:      cfg.Embedding.Model,
		Timeout:    cfg.Embedding.TimeoutDuration(),
		Dimensions: cfg.Embedding.Dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding init failed: %w", err)
	}

	knowledgeSystem, err := knowledge.New(cfg.Knowledge, embedder, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("knowledge init failed: %w", err)
	}

	runtime.Lifecycle.OnShutdown(func() {
		<-runtime.Lifecycle.Context().Done()
		if err := knowledgeSystem.Close(); err != nil {
			runtime.Logger.Error("knowledge store close failed", "error", err)
		}
	})

	pipelineRuntime := &pipeline.Runtime{
		Acquirer:     acquire.New(runtime.Agent, promptsSystem, runtime.Logger),
		Classifier:   classify.New(runtime.Agent, promptsSystem, runtime.Logger),
		Extractor:    extract.New(runtime.Agent, promptsSystem, runtime.Logger),
		Retriever:    retrieve.New(knowledgeSystem, runtime.Agent, promptsSystem, runtime.Logger),
		Planner:      plan.New(runtime.Agent, promptsSystem, runtime.Logger),
		Simplifier:   simplify.New(runtime.Agent, promptsSystem, runtime.Logger),
		StageTimeout: cfg.Pipeline.StageTimeoutDuration(),
		TopK:         cfg.Pipeline.TopK,
		Logger:       runtime.Logger,
	}

	return &Domain{
		Prompts:   promptsSystem,
		History:   historySystem,
		Contacts:  contactsSystem,
		Knowledge: knowledgeSystem,
		Pipeline:  pipelineRuntime,
	}, nil
}
