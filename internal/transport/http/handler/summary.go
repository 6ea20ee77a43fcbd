package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"transcriptai/internal/app"
	"transcriptai/internal/transport/http/response"
)

type SummaryHandler struct {
	summaryService *app.SummaryService
	logger         *zap.Logger
}

type UpdateSummaryRequest struct {
	SummaryText string `json:"summary_text"`
}

func NewSummaryHandler(summaryService *app.SummaryService, logger *zap.Logger) *SummaryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// Dispatch routes /summary/{id}/, /summary/update/{id}/ and
// /summary/share/{id}/. The verb comes before the id in these URLs, which
// gin's routing tree cannot hold next to a /summary/:id/ wildcard, so the
// split happens here.
func (h *SummaryHandler) Dispatch(c *gin.Context) {
	parts := strings.Split(strings.Trim(c.Param("path"), "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		h.view(c, parts[0])
	case len(parts) == 2 && parts[0] == "update":
		h.update(c, parts[1])
	case len(parts) == 2 && parts[0] == "share":
		h.share(c, parts[1])
	default:
		c.String(http.StatusNotFound, "404 page not found")
	}
}

func (h *SummaryHandler) view(c *gin.Context, id string) {
	transcript, err := h.summaryService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrTranscriptNotFound) {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		h.logger.Error("load transcript failed", zap.String("transcript_id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Could not load the summary.")
		return
	}

	c.HTML(http.StatusOK, "summary.html", gin.H{"transcript": transcript})
}

func (h *SummaryHandler) update(c *gin.Context, id string) {
	if c.Request.Method != http.MethodPost {
		response.Error(c, http.StatusMethodNotAllowed, "Invalid request method.")
		return
	}

	// An absent summary_text field means clearing the summary.
	var req UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if err := h.summaryService.UpdateSummary(c.Request.Context(), id, req.SummaryText); err != nil {
		if errors.Is(err, app.ErrTranscriptNotFound) {
			response.Error(c, http.StatusNotFound, "Summary not found.")
			return
		}
		h.logger.Error("update summary failed", zap.String("transcript_id", id), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to update summary.")
		return
	}

	response.Success(c, "Summary updated successfully.")
}

func (h *SummaryHandler) share(c *gin.Context, id string) {
	if c.Request.Method != http.MethodPost {
		response.Error(c, http.StatusBadRequest, "Invalid request.")
		return
	}

	recipients, err := h.summaryService.Share(c.Request.Context(), id, c.PostForm("recipients"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrTranscriptNotFound):
			response.Error(c, http.StatusNotFound, "Summary not found.")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "Invalid request.")
		default:
			h.logger.Error("share summary failed", zap.String("transcript_id", id), zap.Error(err))
			response.Error(c, http.StatusInternalServerError, "Failed to send email.")
		}
		return
	}

	response.Success(c, "Summary sent to "+strings.Join(recipients, ", "))
}
