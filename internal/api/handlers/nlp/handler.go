package nlp

import (
	"net/http"

	"github.com/autopilot-ai/AP-SchedulerService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgTextRequired       = "Text input required"
)

type Handler struct {
	parser Parser
	logger Logger
}

func NewHandler(parser Parser, logger Logger) *Handler {
	return &Handler{
		parser: parser,
		logger: logger,
	}
}

// HandleParse POST /nlp/parse
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /nlp/parse - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Text == "" {
		h.logger.Warn("POST /nlp/parse - Empty text input")
		handlers.RespondBadRequest(w, msgTextRequired)
		return
	}

	result := h.parser.Parse(req.Text)

	h.logger.Info("POST /nlp/parse - Parsed: intent=%s, success=%t", result.Intent, result.Success)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleEntities GET /nlp/entities
func (h *Handler) HandleEntities(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromEntities(h.parser.KnownEntities()))
}
