package handler

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	signatureField       = "firma"
	signatureBase64Field = "firma_base64"
	dateLayout           = "2006-01-02"
)

// HealthCheck answers load balancer probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func invalidSession(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Sesión inválida")
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &id, nil
}

// parseDateQuery reads a yyyy-mm-dd query value; an empty value yields nil.
func parseDateQuery(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " debe tener formato AAAA-MM-DD")
	}

	return &parsed, nil
}

// parsePeriodQuery reads mes/anio; both absent yields nil.
func parsePeriodQuery(c echo.Context) (*entity.Period, error) {
	rawMonth, rawYear := c.QueryParam("mes"), c.QueryParam("anio")
	if rawMonth == "" && rawYear == "" {
		return nil, nil
	}

	month, errMonth := strconv.Atoi(rawMonth)
	year, errYear := strconv.Atoi(rawYear)
	if errMonth != nil || errYear != nil {
		return nil, domainerrors.ErrInvalidPeriod
	}

	period := entity.Period{Month: month, Year: year}
	if !period.IsValid() {
		return nil, domainerrors.ErrInvalidPeriod
	}

	return &period, nil
}

func parseStatusQuery(c echo.Context) (*entity.CommissionStatus, error) {
	raw := c.QueryParam("estado")
	if raw == "" {
		return nil, nil
	}

	status := entity.CommissionStatus(raw)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("estado debe ser pendiente o pagado")
	}

	return &status, nil
}

// readSignature returns the PNG bytes of a signature sent either as the
// multipart file "firma" or as a base64 data URL in jsonValue.
// A missing signature yields nil so the usecase reports it.
func readSignature(c echo.Context, jsonValue string) ([]byte, error) {
	if jsonValue != "" {
		return decodeDataURL(jsonValue)
	}

	fileHeader, err := c.FormFile(signatureField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			// Multipart clients may also post the data URL as a plain field.
			if value := c.FormValue(signatureBase64Field); value != "" {
				return decodeDataURL(value)
			}

			return nil, nil
		}

		return nil, domainerrors.ErrSignatureInvalid
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, domainerrors.ErrSignatureInvalid
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, domainerrors.ErrSignatureInvalid
	}

	return content, nil
}

// decodeDataURL accepts "data:image/png;base64,...." or a bare base64 payload.
func decodeDataURL(value string) ([]byte, error) {
	payload := value
	if strings.HasPrefix(value, "data:") {
		idx := strings.Index(value, ",")
		if idx < 0 || !strings.Contains(value[:idx], ";base64") {
			return nil, domainerrors.ErrSignatureInvalid
		}
		payload = value[idx+1:]
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domainerrors.ErrSignatureInvalid
	}

	return content, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}
