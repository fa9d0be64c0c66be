package handler

import (
	"log/slog"
	"net/http"

	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/response"
	"visitadoras/internal/domain/entity"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the signed payment of monthly commissions.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// PayRequest is the JSON form of a payment. Multipart clients send
// nombre_recibe as a field and the PNG as the "firma" file.
type PayRequest struct {
	RecipientName   string `json:"nombre_recibe"`
	SignatureBase64 string `json:"firma_base64"`
}

// bindPayment reads the recipient and signature from either encoding.
func bindPayment(c echo.Context, commissionID, payerID uuid.UUID) (*usecase.PayInput, error) {
	var req PayRequest
	if isMultipart(c) {
		req.RecipientName = c.FormValue("nombre_recibe")
	} else if err := c.Bind(&req); err != nil {
		return nil, err
	}

	signature, err := readSignature(c, req.SignatureBase64)
	if err != nil {
		return nil, err
	}

	return &usecase.PayInput{
		CommissionID:  commissionID,
		PayerID:       payerID,
		RecipientName: req.RecipientName,
		Signature:     signature,
	}, nil
}

// PayMonthly pays a pending monthly commission.
func (h *PaymentHandler) PayMonthly(c echo.Context) error {
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

	record, err := h.paymentUC.PayMonthly(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// ListPayments returns payment records. Visitadoras only see their own;
// admins may filter by ?visitadora_id.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		return invalidSession(c)
	}

	period, err := parsePeriodQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.PaymentFilter{Period: period}
	if requester.IsAdmin() {
		if filter.VisitadoraID, err = parseOptionalUUID(c.QueryParam("visitadora_id")); err != nil {
			return response.BadRequest(c, "INVALID_ID", "ID de visitadora inválido")
		}
	} else {
		filter.VisitadoraID = &requester.ProfileID
	}

	records, err := h.paymentUC.ListPayments(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}
