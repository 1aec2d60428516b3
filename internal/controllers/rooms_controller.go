package controllers

import (
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type RoomsController struct {
	rooms repositories.RoomRepository
}

func NewRoomsController(rooms repositories.RoomRepository) *RoomsController {
	return &RoomsController{rooms: rooms}
}

// GET /api/rooms
func (c *RoomsController) ListHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := c.rooms.ListWithTenants(r.Context())
	if err != nil {
		respondStoreError(w, "Room", err)
		return
	}
	utils.RespondData(w, http.StatusOK, rooms)
}

// POST /api/rooms
func (c *RoomsController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	status := req.Status
	if status == "" {
		status = constants.RoomStatusAvailable
	}
	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	room := &models.Room{
		RoomNumber:  req.RoomNumber,
		Floor:       req.Floor,
		Wing:        req.Wing,
		Type:        req.Type,
		Rent:        req.Rent,
		Status:      status,
		Amenities:   amenities,
		Description: req.Description,
	}
	if err := c.rooms.Create(r.Context(), room); err != nil {
		respondStoreError(w, "Room", err)
		return
	}
	utils.RespondData(w, http.StatusCreated, room)
}

// PUT /api/rooms/{id}
func (c *RoomsController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	room, err := c.rooms.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Room", err)
		return
	}
	applyRoomPatch(room, req)

	if err := c.rooms.Update(r.Context(), room); err != nil {
		respondStoreError(w, "Room", err)
		return
	}
	utils.RespondData(w, http.StatusOK, room)
}

// DELETE /api/rooms/{id}
func (c *RoomsController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.rooms.Delete(r.Context(), id); err != nil {
		respondStoreError(w, "Room", err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Room deleted successfully")
}

func applyRoomPatch(room *models.Room, req dtos.UpdateRoomRequest) {
	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Wing != nil {
		room.Wing = *req.Wing
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Rent != nil {
		room.Rent = *req.Rent
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.TenantID != nil {
		room.TenantID = req.TenantID
	}
}
