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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type visitService struct {
	visitRepo         repository.VisitRepository
	physicianRepo     repository.PhysicianRepository
	profileRepo       repository.ProfileRepository
	storage           service.SignatureStorage
	geo               service.GeoService
	events            *eventEmitter
	maxSignatureBytes int
	maxDistance       float64
	loc               *time.Location
	now               func() time.Time
	logger            *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	VisitRepo     repository.VisitRepository
	PhysicianRepo repository.PhysicianRepository
	ProfileRepo   repository.ProfileRepository
	Storage       service.SignatureStorage
	Geo           service.GeoService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		visitRepo:         params.VisitRepo,
		physicianRepo:     params.PhysicianRepo,
		profileRepo:       params.ProfileRepo,
		storage:           params.Storage,
		geo:               params.Geo,
		events:            newEventEmitter(params.Publisher, params.Logger),
		maxSignatureBytes: params.Config.Storage.MaxSignatureBytes,
		maxDistance:       params.Config.Visits.MaxDistanceMeters,
		loc:               params.Config.Location(),
		now:               time.Now,
		logger:            params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record stores a visit captured in the field together with its signature.
func (srv *visitService) Record(ctx context.Context, input *usecase.RecordVisitInput) (*entity.Visit, error) {
	if input.PhysicianID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrPhysicianRequired, "physician not selected")
	}

	point, ok := entity.NewGeoPoint(input.Latitude, input.Longitude)
	if !ok || point == nil {
		return nil, errors.Wrap(domainerrors.ErrLocationRequired, "missing or invalid GPS point")
	}

	if err := validateSignature(input.Signature, srv.maxSignatureBytes); err != nil {
		return nil, err
	}

	physician, err := srv.physicianRepo.FindByID(ctx, input.PhysicianID)
	if err != nil {
		if errors.Is(err, repository.ErrPhysicianNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPhysicianNotFound, "physician not found")
		}

		return nil, errors.Wrap(err, "failed to find physician")
	}

	capturedAt := srv.now()

	signatureURL, err := srv.storage.Upload(ctx, visitSignatureKey(input.VisitadoraID, capturedAt), input.Signature)
	if err != nil {
		srv.log(ctx).Error("Failed to upload visit signature", slog.Any("visitadoraID", input.VisitadoraID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSignatureUploadFailed, err.Error())
	}

	visit := &entity.Visit{
		VisitadoraID: input.VisitadoraID,
		Notes:        strings.TrimSpace(input.Notes),
		Location:     point,
		SignatureURL: signatureURL,
		CreatedAt:    capturedAt,
	}
	visit.SnapshotFrom(physician)

	if physician.Location != nil {
		distance := srv.geo.DistanceMeters(*point, *physician.Location)
		visit.DistanceMeters = &distance

		if distance > srv.maxDistance {
			srv.log(ctx).Warn("Visit captured far from physician",
				slog.Any("visitadoraID", input.VisitadoraID),
				slog.Any("physicianID", physician.ID),
				slog.Float64("distance_meters", distance),
			)
		}
	}

	if err := srv.visitRepo.Create(ctx, visit); err != nil {
		discardUpload(ctx, srv.storage, srv.logger, signatureURL)

		return nil, errors.Wrap(err, "failed to create visit")
	}

	srv.events.emit(ctx, service.EventVisitRecorded, input.VisitadoraID, func(event *service.Event) {
		event.Visit = &service.VisitRecordedPayload{
			VisitID:        visit.ID,
			VisitadoraID:   visit.VisitadoraID,
			VisitadoraName: srv.displayName(ctx, visit.VisitadoraID),
			PhysicianID:    physician.ID,
			PhysicianName:  visit.ClientName,
			DistanceMeters: visit.DistanceMeters,
		}
	})

	srv.log(ctx).Info("Visit recorded", slog.Any("visitID", visit.ID), slog.Any("physicianID", physician.ID))

	return visit, nil
}

func (srv *visitService) displayName(ctx context.Context, profileID uuid.UUID) string {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		srv.log(ctx).Debug("Visitadora name unavailable for event", slog.Any("error", err))

		return ""
	}

	return profile.Name
}

// List returns visits newest first. Visitadoras only ever see their own.
func (srv *visitService) List(ctx context.Context, requester usecase.Requester, input *usecase.ListVisitsInput) ([]*entity.Visit, error) {
	filter := entity.VisitFilter{
		PhysicianName: strings.TrimSpace(input.PhysicianName),
		Municipality:  strings.TrimSpace(input.Municipality),
	}

	switch {
	case !requester.IsAdmin():
		filter.VisitadoraID = &requester.ProfileID
	case input.VisitadoraID != nil:
		filter.VisitadoraID = input.VisitadoraID
	}

	from, to := input.From, input.To
	if input.Scope == entity.VisitScopeToday {
		today := srv.now().In(srv.loc)
		from, to = &today, &today
	}

	start, end, err := dayRange(from, to, srv.loc)
	if err != nil {
		return nil, err
	}
	filter.From, filter.To = start, end

	visits, err := srv.visitRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}

// Get returns a visit. Visitadoras may only read their own.
func (srv *visitService) Get(ctx context.Context, requester usecase.Requester, id uuid.UUID) (*entity.Visit, error) {
	visit, err := srv.visitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVisitNotFound, "visit not found")
		}

		return nil, errors.Wrap(err, "failed to find visit")
	}

	if !requester.IsAdmin() && visit.VisitadoraID != requester.ProfileID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "visit belongs to another visitadora")
	}

	return visit, nil
}
