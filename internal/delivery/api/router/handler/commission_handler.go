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

// CommissionHandlerParams holds dependencies for CommissionHandler, injected by Fx.
type CommissionHandlerParams struct {
	fx.In

	CommissionUC usecase.CommissionUsecase
	Logger       *slog.Logger
}

// CommissionHandler serves commission configuration and the monthly rollup.
type CommissionHandler struct {
	commissionUC usecase.CommissionUsecase
	logger       *slog.Logger
}

// NewCommissionHandler is the constructor for CommissionHandler
func NewCommissionHandler(params CommissionHandlerParams) *CommissionHandler {
	return &CommissionHandler{
		commissionUC: params.CommissionUC,
		logger:       params.Logger,
	}
}

// SaveConfigRequest is the body of PUT /physicians/:id/commission-config.
// mes/anio pick the month credited; they default to the current month.
type SaveConfigRequest struct {
	USG      entity.CommissionRule `json:"usg"`
	Especial entity.CommissionRule `json:"especial"`
	EKG      entity.CommissionRule `json:"ekg"`
	Month    int                   `json:"mes"`
	Year     int                   `json:"anio"`
}

// SaveConfigResponse reports what the save credited.
type SaveConfigResponse struct {
	Config  *entity.CommissionConfig  `json:"config"`
	Amounts entity.CategoryAmounts    `json:"montos"`
	Monthly *entity.MonthlyCommission `json:"comision_mensual,omitempty"`
}

// AddDirectRequest is the body of POST /commissions/direct.
type AddDirectRequest struct {
	PhysicianID string          `json:"medico_id" validate:"required,uuid"`
	Amount      decimal.Decimal `json:"monto"`
	Month       int             `json:"mes"`
	Year        int             `json:"anio"`
}

func optionalPeriod(month, year int) *entity.Period {
	if month == 0 && year == 0 {
		return nil
	}

	return &entity.Period{Month: month, Year: year}
}

// GetConfig returns the physician's rules; unset physicians get zero rules.
func (h *CommissionHandler) GetConfig(c echo.Context) error {
	physicianID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de médico inválido")
	}

	cfg, err := h.commissionUC.GetConfig(c.Request().Context(), physicianID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// SaveConfig stores the rules and credits the computed amounts.
func (h *CommissionHandler) SaveConfig(c echo.Context) error {
	physicianID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de médico inválido")
	}

	var req SaveConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Configuración de comisión inválida")
	}

	out, err := h.commissionUC.SaveConfig(c.Request().Context(), physicianID, &usecase.SaveConfigInput{
		USG:      req.USG,
		Especial: req.Especial,
		EKG:      req.EKG,
		Period:   optionalPeriod(req.Month, req.Year),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SaveConfigResponse{
		Config:  out.Config,
		Amounts: out.Amounts,
		Monthly: out.Monthly,
	})
}

// AddDirect credits a flat amount to the physician's especial column.
func (h *CommissionHandler) AddDirect(c echo.Context) error {
	var req AddDirectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Comisión inválida")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	physicianID, err := parseOptionalUUID(req.PhysicianID)
	if err != nil || physicianID == nil {
		return response.BadRequest(c, "INVALID_ID", "ID de médico inválido")
	}

	row, err := h.commissionUC.AddDirect(c.Request().Context(), &usecase.AddDirectInput{
		PhysicianID: *physicianID,
		Amount:      req.Amount,
		Period:      optionalPeriod(req.Month, req.Year),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, row)
}

func monthlyFilter(c echo.Context) (entity.MonthlyCommissionFilter, error) {
	filter := entity.MonthlyCommissionFilter{PhysicianName: c.QueryParam("medico")}

	period, err := parsePeriodQuery(c)
	if err != nil {
		return filter, err
	}
	filter.Period = period

	status, err := parseStatusQuery(c)
	if err != nil {
		return filter, err
	}
	filter.Status = status

	return filter, nil
}

// ListMonthly returns monthly rows filtered by ?mes&anio&estado&medico.
func (h *CommissionHandler) ListMonthly(c echo.Context) error {
	filter, err := monthlyFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rows, err := h.commissionUC.ListMonthly(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// Summary returns pending and paid totals for the same filters as ListMonthly.
func (h *CommissionHandler) Summary(c echo.Context) error {
	filter, err := monthlyFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.commissionUC.Summary(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetMonthly returns one row with its payer.
func (h *CommissionHandler) GetMonthly(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de comisión inválido")
	}

	detail, err := h.commissionUC.GetMonthly(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// DeleteMonthly removes a pending row.
func (h *CommissionHandler) DeleteMonthly(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de comisión inválido")
	}

	if err := h.commissionUC.DeleteMonthly(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Comisión eliminada"})
}

// DeleteAllPending clears every pending monthly row.
func (h *CommissionHandler) DeleteAllPending(c echo.Context) error {
	deleted, err := h.commissionUC.DeleteAllPending(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"eliminadas": deleted})
}

// DeleteAll clears the monthly table including paid history.
func (h *CommissionHandler) DeleteAll(c echo.Context) error {
	deleted, err := h.commissionUC.DeleteAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"eliminadas": deleted})
}
