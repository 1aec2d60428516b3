package controllers

import (
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

// contactListLimit caps the inbox listing at the newest messages.
const contactListLimit = 50

type ContactsController struct {
	contacts repositories.ContactRepository
}

func NewContactsController(contacts repositories.ContactRepository) *ContactsController {
	return &ContactsController{contacts: contacts}
}

// GET /api/contacts
func (c *ContactsController) ListHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := c.contacts.ListRecent(r.Context(), contactListLimit)
	if err != nil {
		respondStoreError(w, "Message", err)
		return
	}
	utils.RespondData(w, http.StatusOK, messages)
}

// POST /api/contacts
func (c *ContactsController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := c.contacts.Create(r.Context(), msg); err != nil {
		respondStoreError(w, "Message", err)
		return
	}
	utils.RespondData(w, http.StatusCreated, msg)
}

// PUT /api/contacts/{id}/read
func (c *ContactsController) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	msg, err := c.contacts.MarkRead(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Message", err)
		return
	}
	utils.RespondData(w, http.StatusOK, msg)
}
