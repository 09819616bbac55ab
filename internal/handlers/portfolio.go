package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/interiorswala/studio-backend/internal/services"
	"github.com/interiorswala/studio-backend/internal/types"
)

type PortfolioHandler struct {
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

func (ph *PortfolioHandler) ListPortfolio(c *gin.Context) {
	items, err := ph.portfolioService.ListPortfolio(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	if items == nil {
		items = []*types.PortfolioItem{}
	}
	RespondOK(c, items)
}

func (ph *PortfolioHandler) AddPortfolioItem(c *gin.Context) {
	var item types.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		RespondError(c, http.StatusBadRequest, "malformed_body", err)
		return
	}
	id, err := ph.portfolioService.AddPortfolioItem(c.Request.Context(), &item)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	RespondOK(c, gin.H{"id": id})
}

// DeletePortfolioItem deletes by id. A numeric id that does not exist still
// acknowledges success; an unparseable id is rejected.
func (ph *PortfolioHandler) DeletePortfolioItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ph.portfolioService.DeletePortfolioItem(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
