package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/tsawler/vitae"
	"github.com/tsawler/vitae/config"
	"github.com/tsawler/vitae/export"
	"github.com/tsawler/vitae/model"
)

// warningCountHeader reports the number of warnings on non-JSON responses
const warningCountHeader = "X-Vitae-Warnings"

type handler struct {
	lexicon  config.Lexicon
	maxBytes int64
	logger   *slog.Logger
}

func newHandler(lex config.Lexicon, maxUploadMB int, logger *slog.Logger) *handler {
	if maxUploadMB < 1 {
		maxUploadMB = 1
	}
	return &handler{
		lexicon:  lex,
		maxBytes: int64(maxUploadMB) << 20,
		logger:   logger,
	}
}

type resumeResponse struct {
	Document *model.ResumeDocument `json:"document"`
	Warnings []vitae.Warning       `json:"warnings"`
}

type textResponse struct {
	Text     string          `json:"text"`
	Warnings []vitae.Warning `json:"warnings"`
}

// GET /health
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /v1/resume
// Accepts a multipart "file" field or the raw document as the body.
// ?format= selects an export format; ?match=first picks the first
// matching section instead of the last.
func (h *handler) handleResume(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	doc, warnings, err := h.extractor(r, data).Resume()
	if err != nil {
		h.writeExtractError(w, err)
		return
	}
	if warnings == nil {
		warnings = []vitae.Warning{}
	}

	if format == export.ExportFormatJSON {
		writeJSON(w, http.StatusOK, resumeResponse{Document: doc, Warnings: warnings})
		return
	}

	var buf bytes.Buffer
	if err := export.NewExporterWithConfig(export.ConfigFor(format)).Export(doc, &buf); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		h.logger.Error("export error", "format", format.String(), "error", err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set(warningCountHeader, strconv.Itoa(len(warnings)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// POST /v1/text
// Returns the first page as plain text, one line per run unless
// ?join=true.
func (h *handler) handleText(w http.ResponseWriter, r *http.Request) {
	data, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	ext := h.extractor(r, data)
	if join, _ := strconv.ParseBool(r.URL.Query().Get("join")); join {
		ext = ext.JoinLines()
	}

	txt, warnings, err := ext.Text()
	if err != nil {
		h.writeExtractError(w, err)
		return
	}
	if warnings == nil {
		warnings = []vitae.Warning{}
	}
	writeJSON(w, http.StatusOK, textResponse{Text: txt, Warnings: warnings})
}

func (h *handler) extractor(r *http.Request, data []byte) *vitae.Extractor {
	ext := vitae.FromBytes(data).WithLexicon(h.lexicon).WithLogger(h.logger)
	if r.URL.Query().Get("match") == "first" {
		ext = ext.FirstMatchSections()
	}
	return ext
}

// readUpload returns the uploaded document. On failure it writes the
// error response and returns false.
func (h *handler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	var src io.Reader = r.Body
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			h.writeUploadError(w, err)
			return nil, false
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "multipart upload requires a 'file' field")
			return nil, false
		}
		defer file.Close()
		src = file
	}

	data, err := io.ReadAll(src)
	if err != nil {
		h.writeUploadError(w, err)
		return nil, false
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty upload")
		return nil, false
	}
	return data, true
}

func (h *handler) writeUploadError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
		return
	}
	writeError(w, http.StatusBadRequest, "failed to read upload")
	h.logger.Warn("reading upload", "error", err)
}

func (h *handler) writeExtractError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vitae.ErrNoInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, vitae.ErrUnsupportedFormat):
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, vitae.ErrOpenFailed), errors.Is(err, vitae.ErrNoPages):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "extraction failed")
		h.logger.Error("extraction error", "error", err)
	}
}
