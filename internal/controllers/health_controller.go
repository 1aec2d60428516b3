package controllers

import (
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// GET /api/health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondData(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}
