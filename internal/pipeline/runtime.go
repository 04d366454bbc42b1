package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/iamdbstjd/DC-TermProject3/internal/acquire"
	"github.com/iamdbstjd/DC-TermProject3/internal/classify"
	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/plan"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
	"github.com/iamdbstjd/DC-TermProject3/internal/simplify"
)

// Narrow stage contracts the orchestrator depends on. Each is satisfied by
// the agent-backed stage system and by deterministic test doubles.
type (
	Acquirer interface {
		Acquire(ctx context.Context, data []byte, contentType string) (*acquire.RawText, error)
	}

	Classifier interface {
		Classify(ctx context.Context, text string) (*classify.Classification, error)
	}

	Extractor interface {
		Extract(ctx context.Context, text, typeCode string) (*extract.Facts, error)
	}

	Retriever interface {
		Retrieve(ctx context.Context, typeCode string, facts *extract.Facts, topK int) (*retrieve.Context, error)
	}

	Planner interface {
		Plan(ctx context.Context, typeCode string, facts *extract.Facts, rctx *retrieve.Context) (*plan.Plan, error)
	}

	Simplifier interface {
		Simplify(
			ctx context.Context,
			typeName string,
			facts *extract.Facts,
			p *plan.Plan,
			rctx *retrieve.Context,
		) (*simplify.Explanation, error)
	}
)

// Runtime bundles the dependencies the pipeline nodes require. It is
// constructed by higher-level composition code from Infrastructure and
// Domain systems.
type Runtime struct {
	Acquirer   Acquirer
	Classifier Classifier
	Extractor  Extractor
	Retriever  Retriever
	Planner    Planner
	Simplifier Simplifier

	// StageTimeout bounds each remote-call suspension point.
	StageTimeout time.Duration
	// TopK is the knowledge chunk count requested during retrieval.
	TopK int

	Logger *slog.Logger
}

// stageContext wraps ctx with the per-stage timeout when one is configured.
func (rt *Runtime) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if rt.StageTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, rt.StageTimeout)
}
