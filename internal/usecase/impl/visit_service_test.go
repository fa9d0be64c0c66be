package impl

import (
	"context"
	"testing"
	"time"

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

type visitServiceFixtures struct {
	service       *visitService
	visitRepo     *mockRepo.MockVisitRepository
	physicianRepo *mockRepo.MockPhysicianRepository
	profileRepo   *mockRepo.MockProfileRepository
	storage       *mockSvc.MockSignatureStorage
	geo           *mockSvc.MockGeoService
	publisher     *mockSvc.MockEventPublisher
	now           time.Time
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	fx := visitServiceFixtures{
		visitRepo:     mockRepo.NewMockVisitRepository(t),
		physicianRepo: mockRepo.NewMockPhysicianRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		storage:       mockSvc.NewMockSignatureStorage(t),
		geo:           mockSvc.NewMockGeoService(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		now:           time.UnixMilli(1718000000000),
	}

	fx.service = NewVisitService(VisitServiceParams{
		VisitRepo:     fx.visitRepo,
		PhysicianRepo: fx.physicianRepo,
		ProfileRepo:   fx.profileRepo,
		Storage:       fx.storage,
		Geo:           fx.geo,
		Publisher:     fx.publisher,
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	}).(*visitService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func ptr[T any](v T) *T {
	return &v
}

func TestVisitService_Record_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visitadoraID := uuid.New()
	visitID := uuid.New()
	physician := &entity.Physician{
		ID:           uuid.New(),
		Name:         "Dr. Pérez",
		Municipality: "Mixco",
		Location:     &entity.GeoPoint{Latitude: 14.63, Longitude: -90.61},
		Active:       true,
	}
	key := visitSignatureKey(visitadoraID, fx.now)

	fx.physicianRepo.EXPECT().FindByID(ctx, physician.ID).Return(physician, nil)
	fx.storage.EXPECT().Upload(ctx, key, testSignature).Return("https://cdn.example.com/"+key, nil)
	fx.geo.EXPECT().DistanceMeters(entity.GeoPoint{Latitude: 14.6301, Longitude: -90.6101}, *physician.Location).Return(14.5)
	fx.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(_ context.Context, visit *entity.Visit) { visit.ID = visitID }).
		Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, visitadoraID).Return(&entity.Profile{ID: visitadoraID, Name: "Ana"}, nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == service.EventVisitRecorded &&
				event.Visit.VisitID == visitID &&
				event.Visit.VisitadoraName == "Ana" &&
				*event.Visit.DistanceMeters == 14.5
		})).
		Return(nil)

	visit, err := fx.service.Record(ctx, &usecase.RecordVisitInput{
		VisitadoraID: visitadoraID,
		PhysicianID:  physician.ID,
		Notes:        "  muestras entregadas ",
		Latitude:     ptr(14.6301),
		Longitude:    ptr(-90.6101),
		Signature:    testSignature,
	})

	require.NoError(t, err)
	assert.Equal(t, "Dr. Pérez", visit.ClientName)
	assert.Equal(t, entity.VisitAddressUnknown, visit.Address)
	assert.Equal(t, entity.VisitEstablishmentUnknown, visit.EstablishmentType)
	assert.Equal(t, "muestras entregadas", visit.Notes)
	assert.Equal(t, 14.5, *visit.DistanceMeters)
	assert.Equal(t, fx.now, visit.CreatedAt)
}

func TestVisitService_Record_PhysicianWithoutLocationHasNoDistance(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	physician := &entity.Physician{ID: uuid.New(), Name: "Dra. Gómez", Clinic: "Clínica Roosevelt", Address: "6a avenida", Active: true}

	fx.physicianRepo.EXPECT().FindByID(ctx, physician.ID).Return(physician, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, testSignature).Return("url", nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, mock.Anything).Return(nil, repository.ErrProfileNotFound)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	visit, err := fx.service.Record(ctx, &usecase.RecordVisitInput{
		VisitadoraID: uuid.New(),
		PhysicianID:  physician.ID,
		Latitude:     ptr(14.6),
		Longitude:    ptr(-90.5),
		Signature:    testSignature,
	})

	require.NoError(t, err)
	assert.Nil(t, visit.DistanceMeters)
	assert.Equal(t, "Clínica Roosevelt", visit.EstablishmentType)
	assert.Equal(t, "6a avenida", visit.Address)
}

func TestVisitService_Record_RejectsBeforeAnyIO(t *testing.T) {
	physicianID := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.RecordVisitInput
		wantErr error
	}{
		{
			name:    "no physician",
			input:   &usecase.RecordVisitInput{Latitude: ptr(1.0), Longitude: ptr(1.0), Signature: testSignature},
			wantErr: domainerrors.ErrPhysicianRequired,
		},
		{
			name:    "no location",
			input:   &usecase.RecordVisitInput{PhysicianID: physicianID, Signature: testSignature},
			wantErr: domainerrors.ErrLocationRequired,
		},
		{
			name:    "half a location",
			input:   &usecase.RecordVisitInput{PhysicianID: physicianID, Latitude: ptr(14.6), Signature: testSignature},
			wantErr: domainerrors.ErrLocationRequired,
		},
		{
			name:    "latitude out of range",
			input:   &usecase.RecordVisitInput{PhysicianID: physicianID, Latitude: ptr(91.0), Longitude: ptr(0.0), Signature: testSignature},
			wantErr: domainerrors.ErrLocationRequired,
		},
		{
			name:    "no signature",
			input:   &usecase.RecordVisitInput{PhysicianID: physicianID, Latitude: ptr(14.6), Longitude: ptr(-90.5)},
			wantErr: domainerrors.ErrSignatureRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVisitService(t)

			_, err := fx.service.Record(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestVisitService_Record_UploadFailure(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	physician := &entity.Physician{ID: uuid.New(), Name: "Dr. Pérez", Active: true}

	fx.physicianRepo.EXPECT().FindByID(ctx, physician.ID).Return(physician, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, testSignature).Return("", errors.New("bucket unavailable"))

	_, err := fx.service.Record(ctx, &usecase.RecordVisitInput{
		VisitadoraID: uuid.New(),
		PhysicianID:  physician.ID,
		Latitude:     ptr(14.6),
		Longitude:    ptr(-90.5),
		Signature:    testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrSignatureUploadFailed))
}

func TestVisitService_Record_StoreFailureDiscardsSignature(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	physician := &entity.Physician{ID: uuid.New(), Name: "Dr. Pérez", Active: true}

	fx.physicianRepo.EXPECT().FindByID(ctx, physician.ID).Return(physician, nil)
	fx.storage.EXPECT().Upload(ctx, mock.Anything, testSignature).Return("https://cdn.example.com/f.png", nil)
	fx.visitRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection refused"))
	fx.storage.EXPECT().Delete(mock.Anything, "https://cdn.example.com/f.png").Return(nil)

	_, err := fx.service.Record(ctx, &usecase.RecordVisitInput{
		VisitadoraID: uuid.New(),
		PhysicianID:  physician.ID,
		Latitude:     ptr(14.6),
		Longitude:    ptr(-90.5),
		Signature:    testSignature,
	})

	assert.Error(t, err)
}

func TestVisitService_Record_UnknownPhysician(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	physicianID := uuid.New()
	fx.physicianRepo.EXPECT().FindByID(ctx, physicianID).Return(nil, repository.ErrPhysicianNotFound)

	_, err := fx.service.Record(ctx, &usecase.RecordVisitInput{
		VisitadoraID: uuid.New(),
		PhysicianID:  physicianID,
		Latitude:     ptr(14.6),
		Longitude:    ptr(-90.5),
		Signature:    testSignature,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPhysicianNotFound))
}

func TestVisitService_List_VisitadoraSeesOnlyOwnVisits(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	me := usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleVisitadora}
	someoneElse := uuid.New()

	fx.visitRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter entity.VisitFilter) bool {
			return filter.VisitadoraID != nil && *filter.VisitadoraID == me.ProfileID
		})).
		Return([]*entity.Visit{}, nil)

	_, err := fx.service.List(ctx, me, &usecase.ListVisitsInput{VisitadoraID: &someoneElse})

	assert.NoError(t, err)
}

func TestVisitService_List_AdminFiltersByVisitadora(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	admin := usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleAdmin}
	target := uuid.New()

	fx.visitRepo.EXPECT().
		List(ctx, entity.VisitFilter{VisitadoraID: &target, PhysicianName: "pérez"}).
		Return([]*entity.Visit{{ID: uuid.New()}}, nil)

	visits, err := fx.service.List(ctx, admin, &usecase.ListVisitsInput{VisitadoraID: &target, PhysicianName: " pérez "})

	require.NoError(t, err)
	assert.Len(t, visits, 1)
}

func TestVisitService_List_TodayScope(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	loc := guatemala(t)
	fx.service.now = func() time.Time { return time.Date(2024, time.June, 11, 2, 0, 0, 0, time.UTC) }
	dayStart := time.Date(2024, time.June, 10, 0, 0, 0, 0, loc)

	fx.visitRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter entity.VisitFilter) bool {
			return filter.From.Equal(dayStart) && filter.To.Equal(dayStart.AddDate(0, 0, 1))
		})).
		Return(nil, nil)

	_, err := fx.service.List(ctx, usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleVisitadora}, &usecase.ListVisitsInput{Scope: entity.VisitScopeToday})

	assert.NoError(t, err)
}

func TestVisitService_Get(t *testing.T) {
	owner := uuid.New()
	visit := &entity.Visit{ID: uuid.New(), VisitadoraID: owner}

	tests := []struct {
		name      string
		requester usecase.Requester
		wantErr   error
	}{
		{name: "owner", requester: usecase.Requester{ProfileID: owner, Role: entity.RoleVisitadora}},
		{name: "admin", requester: usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleAdmin}},
		{name: "other visitadora", requester: usecase.Requester{ProfileID: uuid.New(), Role: entity.RoleVisitadora}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVisitService(t)

			ctx := context.Background()
			fx.visitRepo.EXPECT().FindByID(ctx, visit.ID).Return(visit, nil)

			got, err := fx.service.Get(ctx, tt.requester, visit.ID)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, visit, got)
		})
	}
}
