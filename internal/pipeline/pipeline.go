package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/iamdbstjd/DC-TermProject3/internal/acquire"
	"github.com/iamdbstjd/DC-TermProject3/internal/classify"
	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/plan"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
	"github.com/iamdbstjd/DC-TermProject3/internal/simplify"
)

// State bag keys.
const (
	KeyText           = "text"
	KeyClassification = "classification"
	KeyFacts          = "facts"
	KeyContext        = "context"
	KeyPlan           = "plan"
	KeyExplanation    = "explanation"
)

// Execute runs the analysis pipeline for a single source. Acquisition runs
// first (or is bypassed for pre-extracted text); empty acquired text
// short-circuits to the fixed unreadable result. The remaining stages run
// strictly in order on a state graph, and any stage error converts to the
// generic diagnostic result. Elapsed wall-clock time is always recorded.
func Execute(ctx context.Context, rt *Runtime, source Source) *AnalysisResult {
	start := time.Now()
	result := newResult()
	defer func() {
		result.ProcessingTimeMS = time.Since(start).Milliseconds()
	}()

	text, confidence, err := acquireText(ctx, rt, source)
	if err != nil {
		rt.Logger.ErrorContext(ctx, "acquisition failed", "error", err)
		result.markFailed(err)
		return result
	}
	result.AcquisitionConfidence = confidence

	if strings.TrimSpace(text) == "" {
		rt.Logger.WarnContext(ctx, "acquired text empty, short-circuiting")
		result.markUnreadable()
		return result
	}

	graph, err := buildGraph(rt)
	if err != nil {
		rt.Logger.ErrorContext(ctx, "build graph failed", "error", err)
		result.markFailed(err)
		return result
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyText, text)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		rt.Logger.ErrorContext(ctx, "pipeline stage failed", "error", err)
		result.markFailed(err)
		return result
	}

	if err := populateResult(result, finalState); err != nil {
		rt.Logger.ErrorContext(ctx, "assemble result failed", "error", err)
		result.markFailed(err)
		return result
	}

	rt.Logger.InfoContext(
		ctx, "analysis complete",
		"id", result.ID,
		"doc_type", result.DocType,
		"risk_level", result.RiskLevel,
	)

	return result
}

// acquireText resolves the source to raw text: direct text carries a fixed
// confidence of 100, document bytes go through the acquisition stage.
func acquireText(ctx context.Context, rt *Runtime, source Source) (string, float64, error) {
	if source.Text != "" {
		return source.Text, 100, nil
	}

	sctx, cancel := rt.stageContext(ctx)
	defer cancel()

	raw, err := rt.Acquirer.Acquire(sctx, source.Data, source.ContentType)
	if err != nil {
		return "", 0, err
	}

	return raw.Text, raw.Confidence, nil
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("dochelper-analyze")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	nodes := []struct {
		name string
		node state.StateNode
	}{
		{"classify", classifyNode(rt)},
		{"extract", extractNode(rt)},
		{"retrieve", retrieveNode(rt)},
		{"plan", planNode(rt)},
		{"simplify", simplifyNode(rt)},
	}

	for _, n := range nodes {
		if err := graph.AddNode(n.name, n.node); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(nodes)-1; i++ {
		if err := graph.AddEdge(nodes[i].name, nodes[i+1].name, nil); err != nil {
			return nil, err
		}
	}

	if err := graph.SetEntryPoint("classify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("simplify"); err != nil {
		return nil, err
	}

	return graph, nil
}

func classifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		text, err := stateString(s, KeyText)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		sctx, cancel := rt.stageContext(ctx)
		defer cancel()

		classification, err := rt.Classifier.Classify(sctx, text)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		return s.Set(KeyClassification, *classification), nil
	})
}

func extractNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		text, err := stateString(s, KeyText)
		if err != nil {
			return s, fmt.Errorf("extract: %w", err)
		}

		classification, err := stateValue[classify.Classification](s, KeyClassification)
		if err != nil {
			return s, fmt.Errorf("extract: %w", err)
		}

		sctx, cancel := rt.stageContext(ctx)
		defer cancel()

		facts, err := rt.Extractor.Extract(sctx, text, classification.TypeCode)
		if err != nil {
			return s, fmt.Errorf("extract: %w", err)
		}

		return s.Set(KeyFacts, *facts), nil
	})
}

func retrieveNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		classification, err := stateValue[classify.Classification](s, KeyClassification)
		if err != nil {
			return s, fmt.Errorf("retrieve: %w", err)
		}

		facts, err := stateValue[extract.Facts](s, KeyFacts)
		if err != nil {
			return s, fmt.Errorf("retrieve: %w", err)
		}

		sctx, cancel := rt.stageContext(ctx)
		defer cancel()

		rctx, err := rt.Retriever.Retrieve(sctx, classification.TypeCode, &facts, rt.TopK)
		if err != nil {
			return s, fmt.Errorf("retrieve: %w", err)
		}

		return s.Set(KeyContext, *rctx), nil
	})
}

func planNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		classification, err := stateValue[classify.Classification](s, KeyClassification)
		if err != nil {
			return s, fmt.Errorf("plan: %w", err)
		}

		facts, err := stateValue[extract.Facts](s, KeyFacts)
		if err != nil {
			return s, fmt.Errorf("plan: %w", err)
		}

		rctx, err := stateValue[retrieve.Context](s, KeyContext)
		if err != nil {
			return s, fmt.Errorf("plan: %w", err)
		}

		sctx, cancel := rt.stageContext(ctx)
		defer cancel()

		p, err := rt.Planner.Plan(sctx, classification.TypeCode, &facts, &rctx)
		if err != nil {
			return s, fmt.Errorf("plan: %w", err)
		}

		return s.Set(KeyPlan, *p), nil
	})
}

func simplifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		classification, err := stateValue[classify.Classification](s, KeyClassification)
		if err != nil {
			return s, fmt.Errorf("simplify: %w", err)
		}

		facts, err := stateValue[extract.Facts](s, KeyFacts)
		if err != nil {
			return s, fmt.Errorf("simplify: %w", err)
		}

		rctx, err := stateValue[retrieve.Context](s, KeyContext)
		if err != nil {
			return s, fmt.Errorf("simplify: %w", err)
		}

		p, err := stateValue[plan.Plan](s, KeyPlan)
		if err != nil {
			return s, fmt.Errorf("simplify: %w", err)
		}

		sctx, cancel := rt.stageContext(ctx)
		defer cancel()

		explanation, err := rt.Simplifier.Simplify(sctx, classification.TypeName, &facts, &p, &rctx)
		if err != nil {
			return s, fmt.Errorf("simplify: %w", err)
		}

		return s.Set(KeyExplanation, *explanation), nil
	})
}

// populateResult assembles the final state bag into the result.
func populateResult(result *AnalysisResult, s state.State) error {
	classification, err := stateValue[classify.Classification](s, KeyClassification)
	if err != nil {
		return err
	}

	facts, err := stateValue[extract.Facts](s, KeyFacts)
	if err != nil {
		return err
	}

	rctx, err := stateValue[retrieve.Context](s, KeyContext)
	if err != nil {
		return err
	}

	p, err := stateValue[plan.Plan](s, KeyPlan)
	if err != nil {
		return err
	}

	explanation, err := stateValue[simplify.Explanation](s, KeyExplanation)
	if err != nil {
		return err
	}

	result.DocType = classification.TypeCode
	result.DocTypeName = classification.TypeName
	result.Organization = classification.Organization

	result.KeyInfo = &facts
	result.ActionRequired = facts.ActionRequired

	result.EvidenceChunks = rctx.Chunks
	result.ActionPlan = &p

	result.SummaryOneLine = explanation.SummaryOneLine
	result.RiskLevel = explanation.RiskLevel
	result.RiskMessage = explanation.RiskMessage
	result.WhatIsThis = explanation.WhatIsThis
	result.KeyPoints = explanation.KeyPoints
	result.StepsEasy = explanation.StepsEasy
	result.HelpChannels = explanation.HelpChannels
	result.DontWorry = explanation.DontWorry
	result.NeedHelpMessage = explanation.NeedHelpMessage

	return nil
}

func stateString(s state.State, key string) (string, error) {
	return stateValue[string](s, key)
}

func stateValue[T any](s state.State, key string) (T, error) {
	var zero T

	val, ok := s.Get(key)
	if !ok {
		return zero, fmt.Errorf("missing %s in state", key)
	}

	v, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%s has unexpected type %T", key, val)
	}

	return v, nil
}

// Ensure the agent-backed stage systems satisfy the runtime contracts.
var (
	_ Acquirer   = acquire.System(nil)
	_ Classifier = classify.System(nil)
	_ Extractor  = extract.System(nil)
	_ Retriever  = retrieve.System(nil)
	_ Planner    = plan.System(nil)
	_ Simplifier = simplify.System(nil)
)
