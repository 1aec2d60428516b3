package controllers

import (
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type TenantsController struct {
	tenants repositories.TenantRepository
}

func NewTenantsController(tenants repositories.TenantRepository) *TenantsController {
	return &TenantsController{tenants: tenants}
}

// GET /api/tenants
func (c *TenantsController) ListHandler(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.tenants.ListWithRooms(r.Context())
	if err != nil {
		respondStoreError(w, "Tenant", err)
		return
	}
	utils.RespondData(w, http.StatusOK, tenants)
}

// POST /api/tenants
// Creating a tenant also marks their room occupied.
func (c *TenantsController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	status := req.Status
	if status == "" {
		status = constants.TenantStatusActive
	}
	idProofType := req.IDProof.Type
	if idProofType == "" {
		idProofType = "aadhar"
	}

	tenant := &models.Tenant{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		RoomID:   req.RoomID,
		Rent:     req.Rent,
		Deposit:  req.Deposit,
		Status:   status,
		JoinDate: req.JoinDate.Time,
		Address: models.Address{
			Line1: req.Address.Line1,
			Line2: req.Address.Line2,
			City:  req.Address.City,
			State: req.Address.State,
			Zip:   req.Address.Zip,
		},
		IDProof: models.IDProof{
			Type:   idProofType,
			Number: req.IDProof.Number,
			Image:  req.IDProof.Image,
		},
		EmergencyContact: models.EmergencyContact{
			Name:     req.EmergencyContact.Name,
			Phone:    req.EmergencyContact.Phone,
			Relation: req.EmergencyContact.Relation,
		},
		Wing:  req.Wing,
		Floor: req.Floor,
	}
	if err := c.tenants.CreateAndOccupyRoom(r.Context(), tenant); err != nil {
		respondStoreError(w, "Tenant", err)
		return
	}
	utils.RespondData(w, http.StatusCreated, tenant)
}

// PUT /api/tenants/{id}
func (c *TenantsController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateTenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenant, err := c.tenants.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Tenant", err)
		return
	}
	applyTenantPatch(tenant, req)

	if err := c.tenants.Update(r.Context(), tenant); err != nil {
		respondStoreError(w, "Tenant", err)
		return
	}
	utils.RespondData(w, http.StatusOK, tenant)
}

// DELETE /api/tenants/{id}
// Rent payments referencing the tenant are left untouched.
func (c *TenantsController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.tenants.Delete(r.Context(), id); err != nil {
		respondStoreError(w, "Tenant", err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Tenant deleted successfully")
}

func applyTenantPatch(t *models.Tenant, req dtos.UpdateTenantRequest) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Email != nil {
		t.Email = *req.Email
	}
	if req.Phone != nil {
		t.Phone = *req.Phone
	}
	if req.RoomID != nil {
		t.RoomID = *req.RoomID
	}
	if req.Rent != nil {
		t.Rent = *req.Rent
	}
	if req.Deposit != nil {
		t.Deposit = *req.Deposit
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.JoinDate != nil && !req.JoinDate.IsZero() {
		t.JoinDate = req.JoinDate.Time
	}
	if req.Address != nil {
		t.Address = models.Address{
			Line1: req.Address.Line1,
			Line2: req.Address.Line2,
			City:  req.Address.City,
			State: req.Address.State,
			Zip:   req.Address.Zip,
		}
	}
	if req.IDProof != nil {
		t.IDProof = models.IDProof{
			Type:   req.IDProof.Type,
			Number: req.IDProof.Number,
			Image:  req.IDProof.Image,
		}
	}
	if req.EmergencyContact != nil {
		t.EmergencyContact = models.EmergencyContact{
			Name:     req.EmergencyContact.Name,
			Phone:    req.EmergencyContact.Phone,
			Relation: req.EmergencyContact.Relation,
		}
	}
	if req.Wing != nil {
		t.Wing = *req.Wing
	}
	if req.Floor != nil {
		t.Floor = *req.Floor
	}
}
