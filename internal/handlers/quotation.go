package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/interiorswala/studio-backend/internal/services"
	"github.com/interiorswala/studio-backend/internal/types"
)

type QuotationHandler struct {
	quotationService services.QuotationService
}

func NewQuotationHandler(quotationService services.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

func (qh *QuotationHandler) ListQuotations(c *gin.Context) {
	quotations, err := qh.quotationService.ListQuotations(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	if quotations == nil {
		quotations = []*types.QuotationRequest{}
	}
	RespondOK(c, quotations)
}

func (qh *QuotationHandler) SubmitQuotation(c *gin.Context) {
	var request types.QuotationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		RespondError(c, http.StatusBadRequest, "malformed_body", err)
		return
	}
	persisted, err := qh.quotationService.SubmitQuotation(c.Request.Context(), &request)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	RespondOK(c, gin.H{"id": persisted.ID})
}

func (qh *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := qh.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
