// Package acquire implements document text acquisition: PDFs are rendered
// page by page to images, images are encoded to data URIs, and each image is
// read by the vision model.
package acquire

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	dcconfig "github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/encoding"
	"github.com/JaimeStill/document-context/pkg/image"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/iamdbstjd/DC-TermProject3/internal/prompts"
	"github.com/iamdbstjd/DC-TermProject3/pkg/formatting"
)

// Acquisition errors.
var (
	ErrAcquireFailed      = errors.New("text acquisition failed")
	ErrUnsupportedContent = errors.New("unsupported content type")
)

// Content types accepted for analysis.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
)

const sourcePDF = "source.pdf"

// RawText is the acquisition result: the document text and the model's
// self-reported extraction confidence (0-100). Immutable once created.
type RawText struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// System defines the acquisition stage contract.
type System interface {
	Acquire(ctx context.Context, data []byte, contentType string) (*RawText, error)
}

type acquirer struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
	logger  *slog.Logger
}

// New creates a vision-model-backed acquirer.
func New(cfg gaconfig.AgentConfig, ps prompts.System, logger *slog.Logger) System {
	return &acquirer{
		agent:   cfg,
		prompts: ps,
		logger:  logger.With("system", "acquire"),
	}
}

type pageText struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

func (a *acquirer) Acquire(ctx context.Context, data []byte, contentType string) (*RawText, error) {
	prompt, err := prompts.Compose(ctx, a.prompts, prompts.StageAcquire)
	if err != nil {
		return nil, fmt.Errorf("%w: compose prompt: %w", ErrAcquireFailed, err)
	}

	dataURIs, err := a.encodeSource(ctx, data, contentType)
	if err != nil {
		return nil, err
	}

	pages, err := a.readPages(ctx, prompt, dataURIs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquireFailed, err)
	}

	result := combinePages(pages)

	a.logger.InfoContext(
		ctx, "acquisition complete",
		"content_type", contentType,
		"pages", len(pages),
		"confidence", result.Confidence,
	)

	return result, nil
}

// encodeSource turns the uploaded bytes into one data URI per page: PDFs are
// rendered page by page, images pass through directly.
func (a *acquirer) encodeSource(ctx context.Context, data []byte, contentType string) ([]string, error) {
	switch contentType {
	case ContentTypePDF:
		uris, err := renderPDF(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAcquireFailed, err)
		}
		return uris, nil
	case ContentTypePNG:
		uri, err := encoding.EncodeImageDataURI(data, document.PNG)
		if err != nil {
			return nil, fmt.Errorf("%w: encode image: %w", ErrAcquireFailed, err)
		}
		return []string{uri}, nil
	case ContentTypeJPEG:
		// document-context's format enum covers rendered output; JPEG uploads
		// are encoded directly.
		uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
		return []string{uri}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContent, contentType)
	}
}

func (a *acquirer) readPages(ctx context.Context, prompt string, dataURIs []string) ([]pageText, error) {
	pages := make([]pageText, len(dataURIs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(dataURIs)))

	for i := range dataURIs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			ag, err := agent.New(&a.agent)
			if err != nil {
				return fmt.Errorf("page %d: create agent: %w", i+1, err)
			}

			resp, err := ag.Vision(gctx, prompt, []string{dataURIs[i]})
			if err != nil {
				return fmt.Errorf("page %d: vision call: %w", i+1, err)
			}

			parsed, err := formatting.Parse[pageText](resp.Content())
			if err != nil {
				return fmt.Errorf("page %d: parse response: %w", i+1, err)
			}

			pages[i] = parsed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}

// combinePages joins page texts in order and averages the per-page
// confidences.
func combinePages(pages []pageText) *RawText {
	if len(pages) == 0 {
		return &RawText{}
	}

	texts := make([]string, 0, len(pages))
	var total float64
	for _, p := range pages {
		texts = append(texts, p.Text)
		total += p.Confidence
	}

	return &RawText{
		Text:       strings.Join(texts, "\n\n"),
		Confidence: total / float64(len(pages)),
	}
}

func renderPDF(ctx context.Context, data []byte) ([]string, error) {
	tempDir, err := os.MkdirTemp("", "dochelper-acquire-*")
	if err != nil {
		return nil, fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath := filepath.Join(tempDir, sourcePDF)
	if err := os.WriteFile(pdfPath, data, 0600); err != nil {
		return nil, fmt.Errorf("write temp pdf: %w", err)
	}

	pdfDoc, err := document.OpenPDF(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer pdfDoc.Close()

	renderer, err := image.NewImageMagickRenderer(dcconfig.DefaultImageConfig())
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	allPages, err := pdfDoc.ExtractAllPages()
	if err != nil {
		return nil, fmt.Errorf("extract pages: %w", err)
	}

	uris := make([]string, len(allPages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(allPages)))

	for i, page := range allPages {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			rendered, err := page.ToImage(renderer, nil)
			if err != nil {
				return fmt.Errorf("render page %d: %w", i+1, err)
			}

			uri, err := encoding.EncodeImageDataURI(rendered, document.PNG)
			if err != nil {
				return fmt.Errorf("encode page %d: %w", i+1, err)
			}

			uris[i] = uri
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return uris, nil
}

func workerCount(pageCount int) int {
	return max(min(runtime.NumCPU(), pageCount), 1)
}
