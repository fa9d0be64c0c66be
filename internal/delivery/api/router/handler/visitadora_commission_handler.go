package handler

import (
	"log/slog"
	"net/http"

	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// VisitadoraCommissionHandlerParams holds dependencies for VisitadoraCommissionHandler, injected by Fx.
type VisitadoraCommissionHandlerParams struct {
	fx.In

	CommissionUC usecase.VisitadoraCommissionUsecase
	Logger       *slog.Logger
}

// VisitadoraCommissionHandler serves the commissions owed to visitadoras.
type VisitadoraCommissionHandler struct {
	commissionUC usecase.VisitadoraCommissionUsecase
	logger       *slog.Logger
}

// NewVisitadoraCommissionHandler is the constructor for VisitadoraCommissionHandler
func NewVisitadoraCommissionHandler(params VisitadoraCommissionHandlerParams) *VisitadoraCommissionHandler {
	return &VisitadoraCommissionHandler{
		commissionUC: params.CommissionUC,
		logger:       params.Logger,
	}
}

// RegisterVisitadoraCommissionRequest is the body of POST /admin/visitadora-commissions.
type RegisterVisitadoraCommissionRequest struct {
	VisitadoraID string          `json:"visitadora_id" validate:"required,uuid"`
	Month        int             `json:"mes" validate:"required"`
	Year         int             `json:"anio" validate:"required"`
	Amount       decimal.Decimal `json:"monto_comision"`
}

// PayVisitadoraCommissionRequest is the body of POST /admin/visitadora-commissions/:id/pay.
type PayVisitadoraCommissionRequest struct {
	Amount decimal.Decimal `json:"monto_pagado"`
}

// Register records or replaces the commission of a visitadora for a month.
func (h *VisitadoraCommissionHandler) Register(c echo.Context) error {
	var req RegisterVisitadoraCommissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Comisión inválida")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visitadoraID, err := parseOptionalUUID(req.VisitadoraID)
	if err != nil || visitadoraID == nil {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	commission, err := h.commissionUC.Register(c.Request().Context(), &usecase.RegisterVisitadoraCommissionInput{
		VisitadoraID: *visitadoraID,
		Period:       entity.Period{Month: req.Month, Year: req.Year},
		Amount:       req.Amount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, commission)
}

// List returns visitadora commissions, optionally for ?visitadora_id.
func (h *VisitadoraCommissionHandler) List(c echo.Context) error {
	visitadoraID, err := parseOptionalUUID(c.QueryParam("visitadora_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	rows, err := h.commissionUC.List(c.Request().Context(), visitadoraID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// MarkPaid records the amount actually paid.
func (h *VisitadoraCommissionHandler) MarkPaid(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de comisión inválido")
	}

	var req PayVisitadoraCommissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Pago inválido")
	}

	commission, err := h.commissionUC.MarkPaid(c.Request().Context(), id, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, commission)
}
