package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

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

type physicianService struct {
	physicianRepo repository.PhysicianRepository
	profileRepo   repository.ProfileRepository
	geo           service.GeoService
	renderer      service.WorkbookRenderer
	nearbyRadius  float64
	loc           *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// PhysicianServiceParams holds dependencies for PhysicianService, injected by Fx.
type PhysicianServiceParams struct {
	fx.In

	PhysicianRepo repository.PhysicianRepository
	ProfileRepo   repository.ProfileRepository
	Geo           service.GeoService
	Renderer      service.WorkbookRenderer
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPhysicianService is the constructor for physicianService.
func NewPhysicianService(params PhysicianServiceParams) usecase.PhysicianUsecase {
	return &physicianService{
		physicianRepo: params.PhysicianRepo,
		profileRepo:   params.ProfileRepo,
		geo:           params.Geo,
		renderer:      params.Renderer,
		nearbyRadius:  params.Config.Visits.NearbyRadiusMeters,
		loc:           params.Config.Location(),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *physicianService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a physician to the directory.
func (srv *physicianService) Create(ctx context.Context, createdBy uuid.UUID, input *usecase.PhysicianInput) (*entity.Physician, error) {
	physician := &entity.Physician{Active: true, CreatedBy: &createdBy}
	if err := applyPhysicianInput(physician, input); err != nil {
		return nil, err
	}

	if err := srv.physicianRepo.Create(ctx, physician); err != nil {
		return nil, errors.Wrap(err, "failed to create physician")
	}

	srv.log(ctx).Info("Physician created", slog.Any("physicianID", physician.ID))

	return physician, nil
}

// Update replaces the editable fields of a physician.
func (srv *physicianService) Update(ctx context.Context, id uuid.UUID, input *usecase.PhysicianInput) (*entity.Physician, error) {
	physician, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyPhysicianInput(physician, input); err != nil {
		return nil, err
	}

	if err := srv.physicianRepo.Update(ctx, physician); err != nil {
		return nil, errors.Wrap(err, "failed to update physician")
	}

	return physician, nil
}

func applyPhysicianInput(physician *entity.Physician, input *usecase.PhysicianInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("nombre"), "physician name is required")
	}

	location, ok := entity.NewGeoPoint(input.Latitude, input.Longitude)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidCoordinates, "invalid physician coordinates")
	}

	physician.Name = name
	physician.Clinic = strings.TrimSpace(input.Clinic)
	physician.Specialty = strings.TrimSpace(input.Specialty)
	physician.Municipality = strings.TrimSpace(input.Municipality)
	physician.Address = strings.TrimSpace(input.Address)
	physician.Phone = strings.TrimSpace(input.Phone)
	physician.Notes = strings.TrimSpace(input.Notes)
	physician.Location = location

	return nil
}

// Delete deactivates a physician. Past visits keep their snapshot.
func (srv *physicianService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.physicianRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPhysicianNotFound) {
			return errors.Wrap(domainerrors.ErrPhysicianNotFound, "physician not found")
		}

		return errors.Wrap(err, "failed to deactivate physician")
	}

	return nil
}

// Get returns an active physician.
func (srv *physicianService) Get(ctx context.Context, id uuid.UUID) (*entity.Physician, error) {
	physician, err := srv.physicianRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhysicianNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPhysicianNotFound, "physician not found")
		}

		return nil, errors.Wrap(err, "failed to find physician")
	}

	return physician, nil
}

// List returns active physicians ordered by name.
func (srv *physicianService) List(ctx context.Context, search string) ([]*entity.Physician, error) {
	physicians, err := srv.physicianRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list physicians")
	}

	return physicians, nil
}

// Search is the capture-time lookup.
func (srv *physicianService) Search(ctx context.Context, term string) ([]*entity.Physician, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < constants.PhysicianSearchMinLength {
		return []*entity.Physician{}, nil
	}

	physicians, err := srv.physicianRepo.Search(ctx, term, constants.PhysicianSearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search physicians")
	}

	return physicians, nil
}

// Nearby lists physicians around a point, nearest first.
func (srv *physicianService) Nearby(ctx context.Context, lat, lng, radiusMeters float64) ([]entity.PhysicianDistance, error) {
	origin := entity.GeoPoint{Latitude: lat, Longitude: lng}
	if !origin.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "invalid origin")
	}

	if radiusMeters <= 0 {
		radiusMeters = srv.nearbyRadius
	}

	physicians, err := srv.physicianRepo.ListWithLocation(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list physicians with location")
	}

	return srv.geo.Nearby(origin, physicians, radiusMeters), nil
}

// Export renders the directory as a workbook.
func (srv *physicianService) Export(ctx context.Context, requester usecase.Requester, search string) (*usecase.ExportFile, error) {
	physicians, err := srv.List(ctx, search)
	if err != nil {
		return nil, err
	}

	subject := ""
	if profile, err := srv.profileRepo.FindByID(ctx, requester.ProfileID); err == nil {
		subject = profile.Name
	} else {
		srv.log(ctx).Warn("Requester profile unavailable for export", slog.Any("error", err))
	}

	generatedAt := srv.now().In(srv.loc)

	content, err := srv.renderer.RenderPhysicians(&service.PhysicianReport{
		SubjectName: subject,
		GeneratedAt: generatedAt,
		Physicians:  physicians,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrReportFailed, err.Error())
	}

	return &usecase.ExportFile{
		FileName:    physiciansFileName(subject, generatedAt),
		ContentType: usecase.ContentTypeXLSX,
		Content:     content,
	}, nil
}
