package impl

import (
	"context"
	"testing"
	"time"

	"visitadoras/internal/domain/constants"
	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	mockRepo "visitadoras/internal/mocks/repository"
	mockSvc "visitadoras/internal/mocks/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type physicianServiceFixtures struct {
	service       *physicianService
	physicianRepo *mockRepo.MockPhysicianRepository
	profileRepo   *mockRepo.MockProfileRepository
	geo           *mockSvc.MockGeoService
	renderer      *mockSvc.MockWorkbookRenderer
}

func createTestPhysicianService(t *testing.T) physicianServiceFixtures {
	fx := physicianServiceFixtures{
		physicianRepo: mockRepo.NewMockPhysicianRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		geo:           mockSvc.NewMockGeoService(t),
		renderer:      mockSvc.NewMockWorkbookRenderer(t),
	}

	fx.service = NewPhysicianService(PhysicianServiceParams{
		PhysicianRepo: fx.physicianRepo,
		ProfileRepo:   fx.profileRepo,
		Geo:           fx.geo,
		Renderer:      fx.renderer,
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	}).(*physicianService)
	fx.service.now = func() time.Time { return time.Date(2024, time.March, 5, 16, 0, 0, 0, time.UTC) }

	return fx
}

func TestPhysicianService_Create(t *testing.T) {
	fx := createTestPhysicianService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.physicianRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Physician) bool {
			return p.Name == "Dr. Pérez" && p.Active && *p.CreatedBy == adminID && p.Location.Latitude == 14.6
		})).
		Return(nil)

	physician, err := fx.service.Create(ctx, adminID, &usecase.PhysicianInput{
		Name:         " Dr. Pérez ",
		Municipality: "Mixco",
		Latitude:     ptr(14.6),
		Longitude:    ptr(-90.5),
	})

	require.NoError(t, err)
	assert.Equal(t, "Mixco", physician.Municipality)
}

func TestPhysicianService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.PhysicianInput
		wantErr error
	}{
		{name: "blank name", input: &usecase.PhysicianInput{Name: " "}, wantErr: domainerrors.ErrValidationFailed},
		{name: "latitude only", input: &usecase.PhysicianInput{Name: "Dr. X", Latitude: ptr(14.6)}, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "out of range", input: &usecase.PhysicianInput{Name: "Dr. X", Latitude: ptr(14.6), Longitude: ptr(-190.0)}, wantErr: domainerrors.ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPhysicianService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPhysicianService_Create_WithoutLocation(t *testing.T) {
	fx := createTestPhysicianService(t)

	ctx := context.Background()
	fx.physicianRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Physician")).Return(nil)

	physician, err := fx.service.Create(ctx, uuid.New(), &usecase.PhysicianInput{Name: "Dra. Gómez"})

	require.NoError(t, err)
	assert.Nil(t, physician.Location)
}

func TestPhysicianService_Search(t *testing.T) {
	t.Run("short terms return nothing", func(t *testing.T) {
		fx := createTestPhysicianService(t)

		physicians, err := fx.service.Search(context.Background(), " é ")

		require.NoError(t, err)
		assert.Empty(t, physicians)
	})

	t.Run("searches with the capture limit", func(t *testing.T) {
		fx := createTestPhysicianService(t)

		ctx := context.Background()
		fx.physicianRepo.EXPECT().
			Search(ctx, "pé", constants.PhysicianSearchLimit).
			Return([]*entity.Physician{{ID: uuid.New(), Name: "Dr. Pérez"}}, nil)

		physicians, err := fx.service.Search(ctx, "pé")

		require.NoError(t, err)
		assert.Len(t, physicians, 1)
	})
}

func TestPhysicianService_Nearby_DefaultRadius(t *testing.T) {
	fx := createTestPhysicianService(t)

	ctx := context.Background()
	withLocation := []*entity.Physician{{ID: uuid.New(), Location: &entity.GeoPoint{Latitude: 14.6, Longitude: -90.5}}}
	expected := []entity.PhysicianDistance{{Physician: withLocation[0], DistanceMeters: 120}}

	fx.physicianRepo.EXPECT().ListWithLocation(ctx).Return(withLocation, nil)
	fx.geo.EXPECT().Nearby(entity.GeoPoint{Latitude: 14.61, Longitude: -90.5}, withLocation, float64(2000)).Return(expected)

	result, err := fx.service.Nearby(ctx, 14.61, -90.5, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestPhysicianService_Nearby_InvalidOrigin(t *testing.T) {
	fx := createTestPhysicianService(t)

	_, err := fx.service.Nearby(context.Background(), 100, 0, 500)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestPhysicianService_Delete_NotFound(t *testing.T) {
	fx := createTestPhysicianService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.physicianRepo.EXPECT().Deactivate(ctx, id).Return(repository.ErrPhysicianNotFound)

	err := fx.service.Delete(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrPhysicianNotFound))
}

func TestPhysicianService_Export(t *testing.T) {
	fx := createTestPhysicianService(t)

	ctx := context.Background()
	requester := usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleVisitadora}

	fx.physicianRepo.EXPECT().List(ctx, "mixco").Return([]*entity.Physician{{Name: "Dr. Pérez"}}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, requester.ProfileID).Return(&entity.Profile{Name: "Ana López"}, nil)
	fx.renderer.EXPECT().
		RenderPhysicians(mock.MatchedBy(func(report *service.PhysicianReport) bool {
			return report.SubjectName == "Ana López" && len(report.Physicians) == 1
		})).
		Return([]byte("xlsx"), nil)

	file, err := fx.service.Export(ctx, requester, " mixco ")

	require.NoError(t, err)
	assert.Equal(t, "Medicos_Ana_López_05-03-2024.xlsx", file.FileName)
}
