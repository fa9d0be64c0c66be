package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisitadoraHandlerParams holds dependencies for VisitadoraHandler, injected by Fx.
type VisitadoraHandlerParams struct {
	fx.In

	VisitadoraUC usecase.VisitadoraUsecase
	Logger       *slog.Logger
}

// VisitadoraHandler serves visitadora administration and the stats panels.
type VisitadoraHandler struct {
	visitadoraUC usecase.VisitadoraUsecase
	logger       *slog.Logger
}

// NewVisitadoraHandler is the constructor for VisitadoraHandler
func NewVisitadoraHandler(params VisitadoraHandlerParams) *VisitadoraHandler {
	return &VisitadoraHandler{
		visitadoraUC: params.VisitadoraUC,
		logger:       params.Logger,
	}
}

// CreateVisitadoraRequest is the body of POST /admin/visitadoras.
type CreateVisitadoraRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"nombre" validate:"required"`
	Zone     string `json:"zona"`
	Phone    string `json:"telefono"`
}

// UpdateVisitadoraRequest is the body of PUT /admin/visitadoras/:id.
type UpdateVisitadoraRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Zone  string `json:"zona"`
	Phone string `json:"telefono"`
}

// List returns the visitadoras; ?inactivas=true includes deactivated ones.
func (h *VisitadoraHandler) List(c echo.Context) error {
	includeInactive, _ := strconv.ParseBool(c.QueryParam("inactivas"))

	profiles, err := h.visitadoraUC.List(c.Request().Context(), includeInactive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// Create provisions a visitadora account.
func (h *VisitadoraHandler) Create(c echo.Context) error {
	var req CreateVisitadoraRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de visitadora inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.visitadoraUC.Create(c.Request().Context(), &usecase.CreateVisitadoraInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Zone:     req.Zone,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// Get returns one visitadora with their counters.
func (h *VisitadoraHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	detail, err := h.visitadoraUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// Update edits the profile fields of a visitadora.
func (h *VisitadoraHandler) Update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	var req UpdateVisitadoraRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de visitadora inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.visitadoraUC.Update(c.Request().Context(), id, &usecase.UpdateVisitadoraInput{
		Name:  req.Name,
		Zone:  req.Zone,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Deactivate disables a visitadora and revokes their sessions.
func (h *VisitadoraHandler) Deactivate(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	if err := h.visitadoraUC.Deactivate(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Visitadora desactivada"})
}

// Dashboard returns per-visitadora visit counters for the admin panel.
func (h *VisitadoraHandler) Dashboard(c echo.Context) error {
	stats, err := h.visitadoraUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// MyStats returns the caller's own counters.
func (h *VisitadoraHandler) MyStats(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	counters, err := h.visitadoraUC.MyStats(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counters)
}
