package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	VisitUC usecase.VisitUsecase
	Logger  *slog.Logger
}

// VisitHandler serves visit capture and history.
type VisitHandler struct {
	visitUC usecase.VisitUsecase
	logger  *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler
func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{
		visitUC: params.VisitUC,
		logger:  params.Logger,
	}
}

// RecordVisitRequest is the JSON form of POST /visits. Multipart clients send
// the same names as form fields with the PNG in the "firma" file field.
type RecordVisitRequest struct {
	PhysicianID     string   `json:"medico_id"`
	Notes           string   `json:"notas"`
	Latitude        *float64 `json:"latitud"`
	Longitude       *float64 `json:"longitud"`
	SignatureBase64 string   `json:"firma_base64"`
}

// Record stores a visit with its GPS fix and signature.
func (h *VisitHandler) Record(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	var err error

	var req RecordVisitRequest
	if isMultipart(c) {
		req.PhysicianID = c.FormValue("medico_id")
		req.Notes = c.FormValue("notas")
		if req.Latitude, err = parseFormFloat(c, "latitud"); err != nil {
			return response.HandleAppError(c, err)
		}
		if req.Longitude, err = parseFormFloat(c, "longitud"); err != nil {
			return response.HandleAppError(c, err)
		}
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de visita inválidos")
	}

	physicianID, err := uuid.Parse(strings.TrimSpace(req.PhysicianID))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrPhysicianRequired)
	}

	signature, err := readSignature(c, req.SignatureBase64)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	visit, err := h.visitUC.Record(c.Request().Context(), &usecase.RecordVisitInput{
		VisitadoraID: requester.ProfileID,
		PhysicianID:  physicianID,
		Notes:        req.Notes,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Signature:    signature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, visit)
}

// List returns today's visits or the filtered history.
// Query: alcance=today|history, desde, hasta, medico, municipio, visitadora_id.
func (h *VisitHandler) List(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	var err error

	input := &usecase.ListVisitsInput{
		Scope:         entity.VisitScope(c.QueryParam("alcance")),
		PhysicianName: c.QueryParam("medico"),
		Municipality:  c.QueryParam("municipio"),
	}
	if input.Scope == "" {
		input.Scope = entity.VisitScopeHistory
	}

	if input.From, err = parseDateQuery(c, "desde"); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.To, err = parseDateQuery(c, "hasta"); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.VisitadoraID, err = parseOptionalUUID(c.QueryParam("visitadora_id")); err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	visits, err := h.visitUC.List(c.Request().Context(), requester, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visits)
}

// Get returns one visit; visitadoras only see their own.
func (h *VisitHandler) Get(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "ID de visita inválido")
	}

	visit, err := h.visitUC.Get(c.Request().Context(), requester, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

func parseFormFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	return &value, nil
}
