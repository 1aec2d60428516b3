package controllers

import (
	"net/http"

	"github.com/MadanRavuri/pg-backend/internal/constants"
	"github.com/MadanRavuri/pg-backend/internal/dtos"
	"github.com/MadanRavuri/pg-backend/internal/models"
	"github.com/MadanRavuri/pg-backend/internal/repositories"
	"github.com/MadanRavuri/pg-backend/internal/utils"
)

type ExpensesController struct {
	expenses repositories.ExpenseRepository
}

func NewExpensesController(expenses repositories.ExpenseRepository) *ExpensesController {
	return &ExpensesController{expenses: expenses}
}

// GET /api/expenses
func (c *ExpensesController) ListHandler(w http.ResponseWriter, r *http.Request) {
	expenses, err := c.expenses.List(r.Context())
	if err != nil {
		respondStoreError(w, "Expense", err)
		return
	}
	utils.RespondData(w, http.StatusOK, expenses)
}

// POST /api/expenses
func (c *ExpensesController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	status := req.Status
	if status == "" {
		status = constants.ExpenseStatusPending
	}

	expense := &models.Expense{
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          req.Date.Time,
		PaymentMethod: req.PaymentMethod,
		Vendor:        req.Vendor,
		Status:        status,
		Wing:          req.Wing,
	}
	if err := c.expenses.Create(r.Context(), expense); err != nil {
		respondStoreError(w, "Expense", err)
		return
	}
	utils.RespondData(w, http.StatusCreated, expense)
}

// PUT /api/expenses/{id}
func (c *ExpensesController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	expense, err := c.expenses.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, "Expense", err)
		return
	}
	applyExpensePatch(expense, req)

	if err := c.expenses.Update(r.Context(), expense); err != nil {
		respondStoreError(w, "Expense", err)
		return
	}
	utils.RespondData(w, http.StatusOK, expense)
}

// DELETE /api/expenses/{id}
func (c *ExpensesController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.expenses.Delete(r.Context(), id); err != nil {
		respondStoreError(w, "Expense", err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Expense deleted successfully")
}

func applyExpensePatch(e *models.Expense, req dtos.UpdateExpenseRequest) {
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Subcategory != nil {
		e.Subcategory = *req.Subcategory
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Date != nil && !req.Date.IsZero() {
		e.Date = req.Date.Time
	}
	if req.PaymentMethod != nil {
		e.PaymentMethod = *req.PaymentMethod
	}
	if req.Vendor != nil {
		e.Vendor = *req.Vendor
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.Wing != nil {
		e.Wing = *req.Wing
	}
}
