package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interiorswala/studio-backend/internal/services"
	"github.com/interiorswala/studio-backend/internal/types"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := ph.profileService.GetProfile(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	RespondOK(c, profile)
}

func (ph *ProfileHandler) ReplaceProfile(c *gin.Context) {
	var profile types.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		RespondError(c, http.StatusBadRequest, "malformed_body", err)
		return
	}
	if err := ph.profileService.ReplaceProfile(c.Request.Context(), &profile); err != nil {
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
