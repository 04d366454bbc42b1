package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/iamdbstjd/DC-TermProject3/internal/acquire"
	"github.com/iamdbstjd/DC-TermProject3/internal/history"
	"github.com/iamdbstjd/DC-TermProject3/internal/pipeline"
	"github.com/iamdbstjd/DC-TermProject3/pkg/handlers"
	"github.com/iamdbstjd/DC-TermProject3/pkg/routes"
	"github.com/iamdbstjd/DC-TermProject3/pkg/storage"
)

// Analysis request errors.
var (
	ErrMissingFile    = errors.New("file form field is required")
	ErrTextTooShort   = errors.New("text must be at least 10 characters")
	ErrUnsupportedDoc = errors.New("content type must be application/pdf, image/png, or image/jpeg")
	ErrInvalidPDF     = errors.New("pdf could not be read")
)

// minTextLength is the smallest direct-text input worth analyzing.
const minTextLength = 10

// analyzeHandler runs the analysis pipeline for uploads and direct text.
type analyzeHandler struct {
	pipeline  *pipeline.Runtime
	history   history.System
	store     storage.System
	logger    *slog.Logger
	maxUpload int64
}

func newAnalyzeHandler(
	pipeline *pipeline.Runtime,
	history history.System,
	store storage.System,
	logger *slog.Logger,
	maxUpload int64,
) *analyzeHandler {
	return &analyzeHandler{
		pipeline:  pipeline,
		history:   history,
		store:     store,
		logger:    logger.With("handler", "analyze"),
		maxUpload: maxUpload,
	}
}

func (h *analyzeHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/analyze",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.analyze},
			{Method: "POST", Pattern: "/text", Handler: h.analyzeText},
		},
	}
}

// analyze accepts a multipart document upload, runs the full pipeline, and
// records the result. The upload is archived best-effort; archival failures
// never block the analysis response.
func (h *analyzeHandler) analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingFile)
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	data := buf.Bytes()

	contentType := detectContentType(header.Header.Get("Content-Type"), data)
	if !supportedContentType(contentType) {
		handlers.RespondError(w, h.logger, http.StatusUnsupportedMediaType, ErrUnsupportedDoc)
		return
	}

	// Reject unreadable PDFs before spending model calls.
	pages, err := pdfPageCount(data, contentType)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidPDF)
		return
	}

	h.logger.InfoContext(
		r.Context(), "analysis upload received",
		"filename", header.Filename,
		"content_type", contentType,
		"bytes", len(data),
		"pages", pages,
	)

	result := pipeline.Execute(r.Context(), h.pipeline, pipeline.Source{
		Data:        data,
		ContentType: contentType,
	})

	h.archive(r.Context(), result, data, contentType)
	h.record(r.Context(), result)

	handlers.RespondJSON(w, http.StatusOK, result)
}

// analyzeText accepts pre-extracted document text, bypassing acquisition.
func (h *analyzeHandler) analyzeText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	text := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(text) < minTextLength {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrTextTooShort)
		return
	}

	result := pipeline.Execute(r.Context(), h.pipeline, pipeline.Source{Text: text})

	h.record(r.Context(), result)

	handlers.RespondJSON(w, http.StatusOK, result)
}

// archive stores the original upload under the analysis id.
func (h *analyzeHandler) archive(
	ctx context.Context,
	result *pipeline.AnalysisResult,
	data []byte,
	contentType string,
) {
	key := "uploads/" + result.ID.String() + extensionFor(contentType)

	if err := h.store.Upload(ctx, key, bytes.NewReader(data), contentType); err != nil {
		h.logger.WarnContext(ctx, "upload archive failed", "key", key, "error", err)
		return
	}

	h.logger.DebugContext(ctx, "upload archived", "key", key)
}

// record appends the completed analysis to history. Failures are logged, not
// surfaced: the analysis already succeeded from the caller's perspective.
func (h *analyzeHandler) record(ctx context.Context, result *pipeline.AnalysisResult) {
	encoded, err := json.Marshal(result)
	if err != nil {
		h.logger.WarnContext(ctx, "history encode failed", "id", result.ID, "error", err)
		return
	}

	cmd := history.AppendCommand{
		ID:          result.ID,
		AnalyzedAt:  result.AnalyzedAt,
		DocType:     result.DocType,
		DocTypeName: result.DocTypeName,
		Summary:     result.SummaryOneLine,
		RiskLevel:   result.RiskLevel,
		Result:      encoded,
	}

	if err := h.history.Append(ctx, cmd); err != nil {
		h.logger.WarnContext(ctx, "history append failed", "id", result.ID, "error", err)
	}
}

// detectContentType trusts a specific upload header, falling back to
// content sniffing for missing or generic values.
func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}

// pdfPageCount returns the page count for PDFs and 1 for single images.
func pdfPageCount(data []byte, contentType string) (int, error) {
	if contentType != acquire.ContentTypePDF {
		return 1, nil
	}
	return pdfapi.PageCount(bytes.NewReader(data), nil)
}

func supportedContentType(contentType string) bool {
	switch contentType {
	case acquire.ContentTypePDF, acquire.ContentTypePNG, acquire.ContentTypeJPEG:
		return true
	default:
		return false
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case acquire.ContentTypePDF:
		return ".pdf"
	case acquire.ContentTypePNG:
		return ".png"
	case acquire.ContentTypeJPEG:
		return ".jpg"
	default:
		return ""
	}
}
