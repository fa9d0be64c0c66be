package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ReferralHandlerParams holds dependencies for ReferralHandler, injected by Fx.
type ReferralHandlerParams struct {
	fx.In

	ReferralUC usecase.ReferralUsecase
	Logger     *slog.Logger
}

// ReferralHandler serves per-referral commissions, the shared pool and assignments.
type ReferralHandler struct {
	referralUC usecase.ReferralUsecase
	logger     *slog.Logger
}

// NewReferralHandler is the constructor for ReferralHandler
func NewReferralHandler(params ReferralHandlerParams) *ReferralHandler {
	return &ReferralHandler{
		referralUC: params.ReferralUC,
		logger:     params.Logger,
	}
}

// CreateReferralRequest is the body of POST /referrals.
// visitadora_id is read only from admins; visitadoras register their own.
type CreateReferralRequest struct {
	PhysicianID  string          `json:"medico_id" validate:"required,uuid"`
	VisitadoraID string          `json:"visitadora_id"`
	ReferredAt   string          `json:"fecha_referencia"`
	PatientName  string          `json:"paciente_nombre" validate:"required"`
	Study        string          `json:"estudio_realizado"`
	Amount       decimal.Decimal `json:"monto_comision"`
	Notes        string          `json:"observaciones"`
	AssignedTo   string          `json:"asignada_a"`
}

// AssignRequest is the body of PUT /admin/referrals/:id/assign. An empty id returns the commission to the pool.
type AssignRequest struct {
	VisitadoraID string `json:"visitadora_id"`
}

// Create registers a referral commission.
func (h *ReferralHandler) Create(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	var req CreateReferralRequest
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

	assignedTo, err := parseOptionalUUID(req.AssignedTo)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora asignada inválido")
	}

	owner := requester.ProfileID
	if requester.IsAdmin() {
		visitadoraID, err := parseOptionalUUID(req.VisitadoraID)
		if err != nil || visitadoraID == nil {
			return response.BadRequest(c, "INVALID_ID", "visitadora_id es requerido")
		}
		owner = *visitadoraID
	}

	var referredAt time.Time
	if raw := strings.TrimSpace(req.ReferredAt); raw != "" {
		if referredAt, err = time.Parse(dateLayout, raw); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "fecha_referencia debe tener formato AAAA-MM-DD")
		}
	}

	commission, err := h.referralUC.Create(c.Request().Context(), &usecase.CreateReferralInput{
		VisitadoraID: owner,
		PhysicianID:  *physicianID,
		ReferredAt:   referredAt,
		PatientName:  req.PatientName,
		Study:        req.Study,
		Amount:       req.Amount,
		Notes:        req.Notes,
		AssignedTo:   assignedTo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, commission)
}

// List returns referral commissions. Admins filter by ?estado&visitadora_id&asignada_a&pool;
// visitadoras get the ones they registered.
func (h *ReferralHandler) List(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	status, err := parseStatusQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.ReferralCommissionFilter{Status: status}
	if requester.IsAdmin() {
		if filter.VisitadoraID, err = parseOptionalUUID(c.QueryParam("visitadora_id")); err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
		}
		if filter.AssignedTo, err = parseOptionalUUID(c.QueryParam("asignada_a")); err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de visitadora asignada inválido")
		}
		filter.OnlyPool, _ = strconv.ParseBool(c.QueryParam("pool"))
	} else {
		filter.VisitadoraID = &requester.ProfileID
	}

	rows, err := h.referralUC.ListAll(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// ListAssigned returns the caller's pending assigned commissions.
func (h *ReferralHandler) ListAssigned(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	rows, err := h.referralUC.ListAssigned(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// ListPool returns the unassigned pending commissions any visitadora may pay.
func (h *ReferralHandler) ListPool(c echo.Context) error {
	rows, err := h.referralUC.ListPool(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// ListHistory returns the commissions the caller paid most recently.
func (h *ReferralHandler) ListHistory(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	rows, err := h.referralUC.ListHistory(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// MarkPaid pays an assigned or pool commission with the recipient's signature.
func (h *ReferralHandler) MarkPaid(c echo.Context) error {
	payerID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	commissionID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de comisión inválido")
	}

	input, err := bindPayment(c, commissionID, payerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.referralUC.MarkPaid(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// Assign hands a pending commission to a visitadora or back to the pool.
func (h *ReferralHandler) Assign(c echo.Context) error {
	actorID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	commissionID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de comisión inválido")
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Asignación inválida")
	}

	visitadoraID, err := parseOptionalUUID(req.VisitadoraID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	commission, err := h.referralUC.Assign(c.Request().Context(), actorID, commissionID, visitadoraID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, commission)
}

// Delete removes a pending referral commission.
func (h *ReferralHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de comisión inválido")
	}

	if err := h.referralUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Comisión eliminada"})
}
