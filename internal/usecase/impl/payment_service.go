package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"visitadoras/config"
	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	txManager         repository.TransactionManager
	monthlyRepo       repository.MonthlyCommissionRepository
	paymentRepo       repository.PaymentRepository
	storage           service.SignatureStorage
	events            *eventEmitter
	maxSignatureBytes int
	now               func() time.Time
	logger            *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MonthlyRepo repository.MonthlyCommissionRepository
	PaymentRepo repository.PaymentRepository
	Storage     service.SignatureStorage
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:         params.TxManager,
		monthlyRepo:       params.MonthlyRepo,
		paymentRepo:       params.PaymentRepo,
		storage:           params.Storage,
		events:            newEventEmitter(params.Publisher, params.Logger),
		maxSignatureBytes: params.Config.Storage.MaxSignatureBytes,
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkReceipt rejects an incomplete receipt before anything is read or stored.
func checkReceipt(input *usecase.PayInput, maxSignatureBytes int) (string, error) {
	recipient := strings.TrimSpace(input.RecipientName)
	if recipient == "" {
		return "", errors.Wrap(domainerrors.ErrRecipientRequired, "recipient name is blank")
	}

	if err := validateSignature(input.Signature, maxSignatureBytes); err != nil {
		return "", err
	}

	return recipient, nil
}

// PayMonthly settles a pending monthly commission against a signed receipt.
func (srv *paymentService) PayMonthly(ctx context.Context, input *usecase.PayInput) (*entity.PaymentRecord, error) {
	recipient, err := checkReceipt(input, srv.maxSignatureBytes)
	if err != nil {
		return nil, err
	}

	commission, err := srv.monthlyRepo.FindByID(ctx, input.CommissionID)
	if err != nil {
		if errors.Is(err, repository.ErrMonthlyCommissionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommissionNotFound, "monthly commission not found")
		}

		return nil, errors.Wrap(err, "failed to find monthly commission")
	}
	if commission.IsPaid() {
		return nil, errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "monthly commission already paid")
	}

	paidAt := srv.now()

	signatureURL, err := srv.storage.Upload(ctx, monthlyPaymentSignatureKey(commission.ID, paidAt), input.Signature)
	if err != nil {
		srv.log(ctx).Error("Failed to upload payment signature", slog.Any("commissionID", commission.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSignatureUploadFailed, err.Error())
	}

	record := &entity.PaymentRecord{
		VisitadoraID:  input.PayerID,
		CommissionID:  commission.ID,
		Source:        entity.PaymentSourceMonthly,
		PhysicianName: commission.PhysicianName,
		Amount:        sumAmounts(commission.Amounts),
		Period:        commission.Period,
		PaidAt:        paidAt,
		SignatureURL:  signatureURL,
		RecipientName: recipient,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		confirmation := entity.PaymentConfirmation{
			PayerID:       input.PayerID,
			RecipientName: recipient,
			SignatureURL:  signatureURL,
			PaidAt:        paidAt,
		}
		if err := repoFactory.NewMonthlyCommissionRepository().MarkPaid(ctx, commission.ID, confirmation); err != nil {
			if errors.Is(err, repository.ErrCommissionNotPending) {
				return errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "lost the payment race")
			}

			return errors.Wrap(err, "failed to mark monthly commission paid")
		}

		if err := repoFactory.NewPaymentRepository().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		return nil
	})
	if err != nil {
		discardUpload(ctx, srv.storage, srv.logger, signatureURL)
		srv.log(ctx).Warn("Monthly payment failed", slog.Any("commissionID", commission.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment transaction")
	}

	srv.events.emit(ctx, service.EventCommissionPaid, input.PayerID, func(event *service.Event) {
		event.Payment = &service.CommissionPaidPayload{
			CommissionID:  commission.ID,
			PayerID:       input.PayerID,
			PhysicianName: commission.PhysicianName,
			RecipientName: recipient,
			Amount:        record.Amount,
		}
	})

	srv.log(ctx).Info("Monthly commission paid", slog.Any("commissionID", commission.ID), slog.Any("payerID", input.PayerID))

	return record, nil
}

// ListPayments returns the audit log, newest first.
func (srv *paymentService) ListPayments(ctx context.Context, filter entity.PaymentFilter) ([]*entity.PaymentRecord, error) {
	if filter.Period != nil && !filter.Period.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPeriod, "invalid period filter")
	}

	records, err := srv.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return records, nil
}
