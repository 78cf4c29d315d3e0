package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
	"github.com/graymanconcepts/prompt-manager/internal/importer"
	"github.com/graymanconcepts/prompt-manager/internal/service/library"
)

// maxUploadBytes caps a multipart import request.
const maxUploadBytes = 10 << 20

// uploadField is the multipart field carrying the files.
const uploadField = "file"

type importService interface {
	ImportBatch(ctx context.Context, fileName string, candidates []library.Candidate) (*library.ImportResult, error)
}

// ImportHandler serves POST /api/import.
type ImportHandler struct {
	svc  importService
	opts importer.Options
	log  *slog.Logger
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(svc importService, opts importer.Options, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, opts: opts, log: logger.With("handler", "import")}
}

// Import accepts one or more files in the "file" multipart field. Each file
// becomes its own upload batch. Every file is checked before anything is
// stored, so an unsupported file rejects the whole request.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid upload", Details: err.Error()})
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	files := r.MultipartForm.File[uploadField]
	if len(files) == 0 {
		handleError(w, r, h.log, "Failed to import", domain.NewValidationError(uploadField, "at least one file is required"))
		return
	}

	type parsed struct {
		name       string
		candidates []library.Candidate
	}
	batches := make([]parsed, 0, len(files))
	for _, fh := range files {
		candidates, err := h.parse(fh)
		if err != nil {
			if errors.Is(err, importer.ErrUnsupportedFormat) {
				err = domain.NewValidationError(uploadField, err.Error())
			}
			handleError(w, r, h.log, "Failed to import", err)
			return
		}
		batches = append(batches, parsed{name: fh.Filename, candidates: candidates})
	}

	out := make([]importResponse, 0, len(batches))
	for _, b := range batches {
		res, err := h.svc.ImportBatch(r.Context(), b.name, b.candidates)
		if err != nil {
			handleError(w, r, h.log, "Failed to import "+b.name, err)
			return
		}
		out = append(out, importResponse{
			History: toHistoryResponse(res.History),
			Prompts: toPromptResponses(res.Prompts),
			Skipped: res.Skipped,
		})
	}

	writeJSON(w, http.StatusCreated, out)
}

func (h *ImportHandler) parse(fh *multipart.FileHeader) ([]library.Candidate, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	return importer.Parse(fh.Filename, f, h.opts)
}
