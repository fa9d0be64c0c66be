package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const importFileField = "archivo"

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// ImportHandler serves the bulk workbook import of monthly commissions.
type ImportHandler struct {
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	return &ImportHandler{
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

// Preview parses the uploaded workbook without writing anything.
func (h *ImportHandler) Preview(c echo.Context) error {
	content, err := readUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	preview, err := h.importUC.Preview(c.Request().Context(), content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// Import parses the uploaded workbook and appends its rows as pending commissions.
func (h *ImportHandler) Import(c echo.Context) error {
	content, err := readUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.importUC.Import(c.Request().Context(), content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// Template downloads an empty workbook for ?mes&anio.
func (h *ImportHandler) Template(c echo.Context) error {
	month, errMonth := strconv.Atoi(c.QueryParam("mes"))
	year, errYear := strconv.Atoi(c.QueryParam("anio"))
	if errMonth != nil || errYear != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidPeriod)
	}

	file, err := h.importUC.Template(c.Request().Context(), entity.Period{Month: month, Year: year})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, file)
}

func readUpload(c echo.Context) ([]byte, error) {
	fileHeader, err := c.FormFile(importFileField)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(importFileField + " es requerido")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, domainerrors.ErrImportParse
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, domainerrors.ErrImportParse
	}

	return content, nil
}
