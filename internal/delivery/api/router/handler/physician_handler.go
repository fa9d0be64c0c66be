package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PhysicianHandlerParams holds dependencies for PhysicianHandler, injected by Fx.
type PhysicianHandlerParams struct {
	fx.In

	PhysicianUC usecase.PhysicianUsecase
	Logger      *slog.Logger
}

// PhysicianHandler serves the physician directory.
type PhysicianHandler struct {
	physicianUC usecase.PhysicianUsecase
	logger      *slog.Logger
}

// NewPhysicianHandler is the constructor for PhysicianHandler
func NewPhysicianHandler(params PhysicianHandlerParams) *PhysicianHandler {
	return &PhysicianHandler{
		physicianUC: params.PhysicianUC,
		logger:      params.Logger,
	}
}

// PhysicianRequest is the body of the create and update endpoints.
type PhysicianRequest struct {
	Name         string   `json:"nombre" validate:"required"`
	Clinic       string   `json:"clinica"`
	Specialty    string   `json:"especialidad"`
	Municipality string   `json:"municipio"`
	Address      string   `json:"direccion"`
	Phone        string   `json:"telefono"`
	Notes        string   `json:"referencia"`
	Latitude     *float64 `json:"latitud"`
	Longitude    *float64 `json:"longitud"`
}

func (r *PhysicianRequest) toInput() *usecase.PhysicianInput {
	return &usecase.PhysicianInput{
		Name:         r.Name,
		Clinic:       r.Clinic,
		Specialty:    r.Specialty,
		Municipality: r.Municipality,
		Address:      r.Address,
		Phone:        r.Phone,
		Notes:        r.Notes,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
}

// List returns active physicians, optionally filtered by ?buscar.
func (h *PhysicianHandler) List(c echo.Context) error {
	physicians, err := h.physicianUC.List(c.Request().Context(), c.QueryParam("buscar"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, physicians)
}

// Create adds a physician to the directory.
func (h *PhysicianHandler) Create(c echo.Context) error {
	profileID, ok := middleware.GetProfileID(c)
	if !ok {
		return invalidSession(c)
	}

	var req PhysicianRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de médico inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	physician, err := h.physicianUC.Create(c.Request().Context(), profileID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, physician)
}

// Get returns one physician.
func (h *PhysicianHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de médico inválido")
	}

	physician, err := h.physicianUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, physician)
}

// Update replaces the editable fields of a physician.
func (h *PhysicianHandler) Update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de médico inválido")
	}

	var req PhysicianRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de médico inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	physician, err := h.physicianUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, physician)
}

// Delete deactivates a physician; visits keep referencing it.
func (h *PhysicianHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de médico inválido")
	}

	if err := h.physicianUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Médico eliminado"})
}

// Search backs the autocomplete of the visit form (?q).
func (h *PhysicianHandler) Search(c echo.Context) error {
	physicians, err := h.physicianUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, physicians)
}

// Nearby lists physicians around ?lat&lng within ?radio meters.
func (h *PhysicianHandler) Nearby(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidCoordinates)
	}

	var radius float64
	if raw := c.QueryParam("radio"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "radio debe ser un número positivo")
		}
		radius = parsed
	}

	nearby, err := h.physicianUC.Nearby(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby)
}

// Export downloads the directory as a workbook.
func (h *PhysicianHandler) Export(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	file, err := h.physicianUC.Export(c.Request().Context(), requester, c.QueryParam("buscar"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, file)
}
