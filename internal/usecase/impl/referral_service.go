package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"visitadoras/config"
	deliverycontext "visitadoras/internal/delivery/context"
	"visitadoras/internal/domain/constants"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type referralService struct {
	txManager         repository.TransactionManager
	referralRepo      repository.ReferralCommissionRepository
	physicianRepo     repository.PhysicianRepository
	profileRepo       repository.ProfileRepository
	storage           service.SignatureStorage
	events            *eventEmitter
	maxSignatureBytes int
	loc               *time.Location
	now               func() time.Time
	logger            *slog.Logger
}

// ReferralServiceParams holds dependencies for ReferralService, injected by Fx.
type ReferralServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ReferralRepo  repository.ReferralCommissionRepository
	PhysicianRepo repository.PhysicianRepository
	ProfileRepo   repository.ProfileRepository
	Storage       service.SignatureStorage
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewReferralService is the constructor for referralService.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	return &referralService{
		txManager:         params.TxManager,
		referralRepo:      params.ReferralRepo,
		physicianRepo:     params.PhysicianRepo,
		profileRepo:       params.ProfileRepo,
		storage:           params.Storage,
		events:            newEventEmitter(params.Publisher, params.Logger),
		maxSignatureBytes: params.Config.Storage.MaxSignatureBytes,
		loc:               params.Config.Location(),
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a pending referral commission, optionally assigned.
func (srv *referralService) Create(ctx context.Context, input *usecase.CreateReferralInput) (*entity.ReferralCommission, error) {
	amount := input.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrAmountMustBePositive, "referral amount must be positive")
	}

	patient := strings.TrimSpace(input.PatientName)
	if patient == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("paciente_nombre"), "patient name is required")
	}

	physician, err := srv.physicianRepo.FindByID(ctx, input.PhysicianID)
	if err != nil {
		if errors.Is(err, repository.ErrPhysicianNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPhysicianNotFound, "physician not found")
		}

		return nil, errors.Wrap(err, "failed to find physician")
	}

	if input.AssignedTo != nil {
		if err := srv.requireActiveVisitadora(ctx, *input.AssignedTo); err != nil {
			return nil, err
		}
	}

	referredAt := input.ReferredAt
	if referredAt.IsZero() {
		referredAt = srv.now()
	}

	commission := &entity.ReferralCommission{
		PhysicianID:   physician.ID,
		PhysicianName: physician.Name,
		VisitadoraID:  input.VisitadoraID,
		ReferredAt:    referredAt,
		PatientName:   patient,
		Study:         strings.TrimSpace(input.Study),
		Amount:        amount,
		Notes:         strings.TrimSpace(input.Notes),
		Status:        entity.CommissionPending,
		AssignedTo:    input.AssignedTo,
	}

	if err := srv.referralRepo.Create(ctx, commission); err != nil {
		return nil, errors.Wrap(err, "failed to create referral commission")
	}

	return commission, nil
}

// ListAssigned returns pending commissions assigned to the visitadora.
func (srv *referralService) ListAssigned(ctx context.Context, visitadoraID uuid.UUID) ([]*entity.ReferralCommission, error) {
	rows, err := srv.referralRepo.ListAssignedTo(ctx, visitadoraID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assigned referral commissions")
	}

	return rows, nil
}

// ListPool returns pending commissions nobody was assigned to.
func (srv *referralService) ListPool(ctx context.Context) ([]*entity.ReferralCommission, error) {
	rows, err := srv.referralRepo.ListPool(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referral pool")
	}

	return rows, nil
}

// ListHistory returns the latest commissions paid by the visitadora.
func (srv *referralService) ListHistory(ctx context.Context, visitadoraID uuid.UUID) ([]*entity.ReferralCommission, error) {
	rows, err := srv.referralRepo.ListPaidBy(ctx, visitadoraID, constants.ReferralHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list paid referral commissions")
	}

	return rows, nil
}

// ListAll is the admin listing.
func (srv *referralService) ListAll(ctx context.Context, filter entity.ReferralCommissionFilter) ([]*entity.ReferralCommission, error) {
	rows, err := srv.referralRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referral commissions")
	}

	return rows, nil
}

// Assign moves a pending commission to a visitadora or back to the pool.
func (srv *referralService) Assign(ctx context.Context, actorID, commissionID uuid.UUID, visitadoraID *uuid.UUID) (*entity.ReferralCommission, error) {
	if visitadoraID != nil {
		if err := srv.requireActiveVisitadora(ctx, *visitadoraID); err != nil {
			return nil, err
		}
	}

	if err := srv.referralRepo.Assign(ctx, commissionID, visitadoraID); err != nil {
		return nil, mapReferralError(err)
	}

	commission, err := srv.referralRepo.FindByID(ctx, commissionID)
	if err != nil {
		return nil, mapReferralError(err)
	}

	srv.events.emit(ctx, service.EventReferralAssigned, actorID, func(event *service.Event) {
		event.Assignment = &service.ReferralAssignedPayload{
			CommissionID: commission.ID,
			AssignedTo:   commission.AssignedTo,
			PatientName:  commission.PatientName,
			Amount:       commission.Amount,
		}
	})

	return commission, nil
}

// MarkPaid settles a referral commission. Pool commissions can be paid by anyone,
// assigned ones only by their assignee.
func (srv *referralService) MarkPaid(ctx context.Context, input *usecase.PayInput) (*entity.PaymentRecord, error) {
	recipient, err := checkReceipt(input, srv.maxSignatureBytes)
	if err != nil {
		return nil, err
	}

	commission, err := srv.referralRepo.FindByID(ctx, input.CommissionID)
	if err != nil {
		return nil, mapReferralError(err)
	}
	if commission.Status == entity.CommissionPaid {
		return nil, errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "referral commission already paid")
	}
	if !commission.CanBePaidBy(input.PayerID) {
		return nil, errors.Wrap(domainerrors.ErrCommissionNotAssignedToYou, "referral commission assigned to someone else")
	}

	paidAt := srv.now()

	signatureURL, err := srv.storage.Upload(ctx, referralPaymentSignatureKey(commission.ID, paidAt), input.Signature)
	if err != nil {
		srv.log(ctx).Error("Failed to upload receipt signature", slog.Any("commissionID", commission.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSignatureUploadFailed, err.Error())
	}

	record := &entity.PaymentRecord{
		VisitadoraID:  input.PayerID,
		CommissionID:  commission.ID,
		Source:        entity.PaymentSourceReferral,
		PhysicianName: commission.PhysicianName,
		Amount:        commission.Amount,
		Period:        entity.PeriodOf(commission.ReferredAt.In(srv.loc)),
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
		if err := repoFactory.NewReferralCommissionRepository().MarkPaid(ctx, commission.ID, confirmation); err != nil {
			return mapReferralError(err)
		}

		if err := repoFactory.NewPaymentRepository().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}

		return nil
	})
	if err != nil {
		discardUpload(ctx, srv.storage, srv.logger, signatureURL)
		srv.log(ctx).Warn("Referral payment failed", slog.Any("commissionID", commission.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute referral payment transaction")
	}

	srv.events.emit(ctx, service.EventReferralPaid, input.PayerID, func(event *service.Event) {
		event.Payment = &service.CommissionPaidPayload{
			CommissionID:  commission.ID,
			PayerID:       input.PayerID,
			PhysicianName: commission.PhysicianName,
			RecipientName: recipient,
			Amount:        commission.Amount,
		}
	})

	return record, nil
}

// Delete removes a pending commission.
func (srv *referralService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.referralRepo.Delete(ctx, id); err != nil {
		return mapReferralError(err)
	}

	return nil
}

func (srv *referralService) requireActiveVisitadora(ctx context.Context, id uuid.UUID) error {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrNotVisitadora, "assignee not found")
		}

		return errors.Wrap(err, "failed to find assignee")
	}

	if profile.Role != entity.RoleVisitadora || !profile.Active {
		return errors.Wrap(domainerrors.ErrNotVisitadora, "assignee is not an active visitadora")
	}

	return nil
}

// mapReferralError translates repository sentinels into user-facing errors.
func mapReferralError(err error) error {
	switch {
	case errors.Is(err, repository.ErrReferralCommissionNotFound):
		return errors.Wrap(domainerrors.ErrCommissionNotFound, "referral commission not found")
	case errors.Is(err, repository.ErrCommissionNotPending):
		return errors.Wrap(domainerrors.ErrCommissionAlreadyPaid, "referral commission is not pending")
	case errors.Is(err, repository.ErrReferralCommissionNotPayable):
		return errors.Wrap(domainerrors.ErrCommissionNotAssignedToYou, "referral commission assigned to someone else")
	default:
		return errors.Wrap(err, "referral commission store failure")
	}
}
