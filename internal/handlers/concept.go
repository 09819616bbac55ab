package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/services"
)

const conceptTimeout = 60 * time.Second

type ConceptHandler struct {
	log       *logger.Logger
	generator services.ConceptGenerator
}

// NewConceptHandler accepts a nil generator; the route then reports the
// feature as unconfigured instead of failing at startup.
func NewConceptHandler(log *logger.Logger, generator services.ConceptGenerator) *ConceptHandler {
	return &ConceptHandler{log: log.With("handler", "ConceptHandler"), generator: generator}
}

func (ch *ConceptHandler) GenerateConcept(c *gin.Context) {
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "malformed_body", err)
		return
	}
	if ch.generator == nil {
		RespondError(c, http.StatusServiceUnavailable, "not_configured", fmt.Errorf("concept generation is not configured"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), conceptTimeout)
	defer cancel()

	concept, err := ch.generator.Generate(ctx, body.Prompt)
	if err != nil {
		ch.log.Warn("Concept generation failed", "error", err)
		RespondError(c, http.StatusBadGateway, "provider_error", err)
		return
	}
	RespondOK(c, concept)
}
