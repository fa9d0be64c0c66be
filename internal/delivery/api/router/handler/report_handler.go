package handler

import (
	"log/slog"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves workbook and PDF exports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// FullReport downloads visits plus the commission summary.
// Query: formato=xlsx|pdf, desde, hasta, visitadora_id (admins only).
func (h *ReportHandler) FullReport(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	input := &usecase.FullReportInput{Format: usecase.ReportFormat(c.QueryParam("formato"))}
	if input.Format == "" {
		input.Format = usecase.ReportFormatXLSX
	}

	var err error
	if input.From, err = parseDateQuery(c, "desde"); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.To, err = parseDateQuery(c, "hasta"); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.VisitadoraID, err = parseOptionalUUID(c.QueryParam("visitadora_id")); err != nil {
		return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
	}

	file, err := h.reportUC.FullReport(c.Request().Context(), requester, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, file)
}

// CommissionReport downloads the monthly rollup filtered like the commission list.
func (h *ReportHandler) CommissionReport(c echo.Context) error {
	filter, err := monthlyFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := h.reportUC.CommissionReport(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, file)
}
