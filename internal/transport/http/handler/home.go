package handler

import (
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"transcriptai/internal/app"
)

const maxTranscriptSize = 10 << 20 // 10 MB

type HomeHandler struct {
	summaryService *app.SummaryService
	logger         *zap.Logger
}

func NewHomeHandler(summaryService *app.SummaryService, logger *zap.Logger) *HomeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

func (h *HomeHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// Upload accepts a multipart form with "transcript" (file) and "prompt"
// (text), generates a summary, and redirects to the view page. Every
// failure path re-renders the home page with an error and creates nothing.
func (h *HomeHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("transcript")
	if err != nil {
		h.renderError(c, "Please upload a transcript file.")
		return
	}
	if file.Size > maxTranscriptSize {
		h.renderError(c, "File too large. Please upload a transcript under 10MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		h.logger.Error("open uploaded file failed", zap.Error(err))
		h.renderError(c, "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		h.logger.Error("read uploaded file failed", zap.Error(err))
		h.renderError(c, "Could not read the uploaded file.")
		return
	}
	if !utf8.Valid(raw) {
		h.renderError(c, "Invalid file format. Please upload a valid text file.")
		return
	}

	instruction := c.PostForm("prompt")

	transcript, err := h.summaryService.CreateFromUpload(c.Request.Context(), string(raw), instruction)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrGeneration):
			h.renderError(c, "API Error: Could not generate summary. Please try again later.")
		case errors.Is(err, app.ErrInvalidInput):
			h.renderError(c, "Please upload a non-empty transcript file.")
		default:
			h.logger.Error("create transcript failed", zap.Error(err))
			h.renderError(c, "Could not save the transcript. Please try again.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/summary/"+transcript.ID+"/")
}

func (h *HomeHandler) renderError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "home.html", gin.H{"error": message})
}
