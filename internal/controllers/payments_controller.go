package controllers

import (
	"errors"
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/services"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type PaymentsController struct {
	payments *services.PaymentService
}

func NewPaymentsController(payments *services.PaymentService) *PaymentsController {
	return &PaymentsController{payments: payments}
}

// GET /api/rent-payments?status=&wing=&month=&search=
func (c *PaymentsController) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.PaymentListFilter{
		Status: q.Get("status"),
		Wing:   q.Get("wing"),
		Month:  q.Get("month"),
		Search: q.Get("search"),
	}
	payments, err := c.payments.ListPayments(r.Context(), filter)
	if err != nil {
		respondStoreError(w, "Rent payment", err)
		return
	}
	utils.RespondData(w, http.StatusOK, payments)
}

// POST /api/rent-payments
func (c *PaymentsController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	payment, err := c.payments.CreatePayment(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondStoreError(w, "Rent payment", err)
		return
	}
	utils.RespondData(w, http.StatusCreated, payment)
}

// PUT /api/rent-payments/{id}
func (c *PaymentsController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	payment, err := c.payments.UpdatePayment(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondStoreError(w, "Rent payment", err)
		return
	}
	utils.RespondData(w, http.StatusOK, payment)
}

// DELETE /api/rent-payments/{id}
func (c *PaymentsController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.payments.DeletePayment(r.Context(), id); err != nil {
		respondStoreError(w, "Rent payment", err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Rent payment deleted successfully")
}

// GET /api/rent-payments/stats?month=
func (c *PaymentsController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := c.payments.GetPaymentStats(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respondStoreError(w, "Rent payment", err)
		return
	}
	utils.RespondData(w, http.StatusOK, stats)
}

// POST /api/rent-payments/generate
func (c *PaymentsController) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.GeneratePaymentsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.payments.GenerateMonthlyPayments(r.Context(), req.Month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondStoreError(w, "Rent payment", err)
		return
	}
	utils.RespondData(w, http.StatusOK, dtos.GeneratePaymentsResponse{Created: created})
}
