package controllers

import (
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/services"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type AdminController struct {
	seeder *services.SeedService
}

func NewAdminController(seeder *services.SeedService) *AdminController {
	return &AdminController{seeder: seeder}
}

// POST /api/init-database
func (c *AdminController) InitDatabaseHandler(w http.ResponseWriter, r *http.Request) {
	created, err := c.seeder.InitDatabase(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error(), err)
		return
	}
	if !created {
		utils.RespondMessage(w, http.StatusOK, "Database already has data")
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Database initialized successfully")
}
