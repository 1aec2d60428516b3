package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

var validate = validator.New()

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation. On failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body", err)
		return false
	}
	if err := validate.StructCtx(r.Context(), dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			utils.RespondError(w, http.StatusBadRequest, formatValidationErrors(validationErrors))
		} else {
			utils.RespondError(w, http.StatusBadRequest, "invalid request data", err)
		}
		return false
	}
	return true
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// pathID extracts the {id} path variable. On failure it writes the 400
// response and returns false.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// respondStoreError maps repository errors onto the API contract:
// not-found and duplicates get their own statuses, anything else is a 500
// carrying the underlying message.
func respondStoreError(w http.ResponseWriter, entity string, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, repositories.ErrDuplicate):
		utils.RespondError(w, http.StatusConflict, entity+" already exists")
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error(), err)
	}
}
