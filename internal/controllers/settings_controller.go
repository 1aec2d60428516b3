package controllers

import (
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/services"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// GET /api/settings
func (c *SettingsController) GetHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := c.settings.GetOrCreate(r.Context())
	if err != nil {
		respondStoreError(w, "Settings", err)
		return
	}
	utils.RespondData(w, http.StatusOK, settings)
}

// PUT /api/settings
func (c *SettingsController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	settings, err := c.settings.Upsert(r.Context(), req)
	if err != nil {
		respondStoreError(w, "Settings", err)
		return
	}
	utils.RespondData(w, http.StatusOK, settings)
}
