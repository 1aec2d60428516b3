package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MadanRavuri/pg-backend/internal/auth"
	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type AuthController struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
}

func NewAuthController(users repositories.UserRepository, tokens *auth.TokenManager) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

// POST /api/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.users.FindByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch user", err)
		return
	}
	if !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		utils.RespondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := c.tokens.Generate(user)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to generate token", err)
		return
	}
	utils.RespondData(w, http.StatusOK, dtos.LoginResponse{Token: token, User: *user})
}
