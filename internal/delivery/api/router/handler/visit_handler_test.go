package handler

import (
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"visitadoras/internal/domain/entity"
	domainerrors "visitadoras/internal/domain/errors"
	mockUC "visitadoras/internal/mocks/usecase"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestVisitHandler(t *testing.T) (*VisitHandler, *mockUC.MockVisitUsecase) {
	visitUC := mockUC.NewMockVisitUsecase(t)

	return NewVisitHandler(VisitHandlerParams{VisitUC: visitUC, Logger: newDiscardLogger()}), visitUC
}

func TestVisitHandler_Record_Multipart(t *testing.T) {
	h, visitUC := newTestVisitHandler(t)

	physicianID := uuid.New()
	c, rec := newMultipartContext(t, "/api/v1/visits", map[string]string{
		"medico_id": physicianID.String(),
		"notas":     "Dejó muestras",
		"latitud":   "14.6349",
		"longitud":  "-90.5069",
	}, "firma", pngSignature)
	visitadoraID := authenticate(c, entity.RoleVisitadora)

	visitUC.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(input *usecase.RecordVisitInput) bool {
			return input.VisitadoraID == visitadoraID &&
				input.PhysicianID == physicianID &&
				input.Notes == "Dejó muestras" &&
				*input.Latitude == 14.6349 &&
				*input.Longitude == -90.5069 &&
				string(input.Signature) == string(pngSignature)
		})).
		Return(&entity.Visit{ID: uuid.New(), CreatedAt: time.Now()}, nil)

	require.NoError(t, h.Record(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestVisitHandler_Record_JSONDataURL(t *testing.T) {
	h, visitUC := newTestVisitHandler(t)

	physicianID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/visits", map[string]any{
		"medico_id":    physicianID.String(),
		"latitud":      14.6,
		"longitud":     -90.5,
		"firma_base64": "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngSignature),
	})
	authenticate(c, entity.RoleVisitadora)

	visitUC.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(input *usecase.RecordVisitInput) bool {
			return string(input.Signature) == string(pngSignature)
		})).
		Return(&entity.Visit{ID: uuid.New()}, nil)

	require.NoError(t, h.Record(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestVisitHandler_Record_MissingSignatureReachesUsecase(t *testing.T) {
	h, visitUC := newTestVisitHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/visits", map[string]any{
		"medico_id": uuid.New().String(),
		"latitud":   14.6,
		"longitud":  -90.5,
	})
	authenticate(c, entity.RoleVisitadora)

	visitUC.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(input *usecase.RecordVisitInput) bool { return input.Signature == nil })).
		Return(nil, domainerrors.ErrSignatureRequired)

	require.NoError(t, h.Record(c))
	assert.Equal(t, domainerrors.ErrSignatureRequired.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrSignatureRequired.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
}

func TestVisitHandler_Record_RejectsBeforeUsecase(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		wantCode string
	}{
		{
			name:     "missing physician",
			body:     map[string]any{"latitud": 14.6, "longitud": -90.5},
			wantCode: domainerrors.ErrPhysicianRequired.ErrorCode(),
		},
		{
			name:     "signature not base64",
			body:     map[string]any{"medico_id": uuid.New().String(), "firma_base64": "data:image/png;base64,%%%"},
			wantCode: domainerrors.ErrSignatureInvalid.ErrorCode(),
		},
		{
			name:     "data url without base64 marker",
			body:     map[string]any{"medico_id": uuid.New().String(), "firma_base64": "data:image/png,abc"},
			wantCode: domainerrors.ErrSignatureInvalid.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestVisitHandler(t)

			c, rec := newJSONContext(t, http.MethodPost, "/api/v1/visits", tt.body)
			authenticate(c, entity.RoleVisitadora)

			require.NoError(t, h.Record(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestVisitHandler_Record_Unauthenticated(t *testing.T) {
	h, _ := newTestVisitHandler(t)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/visits", map[string]any{})

	require.NoError(t, h.Record(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVisitHandler_List_ParsesFilters(t *testing.T) {
	h, visitUC := newTestVisitHandler(t)

	visitadoraID := uuid.New()
	c, rec := newJSONContext(t, http.MethodGet,
		"/api/v1/visits?desde=2024-03-01&hasta=2024-03-31&medico=p%C3%A9rez&visitadora_id="+visitadoraID.String(), nil)
	adminID := authenticate(c, entity.RoleAdmin)

	visitUC.EXPECT().
		List(mock.Anything, usecase.Requester{ProfileID: adminID, Role: entity.RoleAdmin}, mock.MatchedBy(func(input *usecase.ListVisitsInput) bool {
			return input.Scope == entity.VisitScopeHistory &&
				input.From.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
				input.To.Equal(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)) &&
				input.PhysicianName == "pérez" &&
				*input.VisitadoraID == visitadoraID
		})).
		Return([]*entity.Visit{}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVisitHandler_List_BadDate(t *testing.T) {
	h, _ := newTestVisitHandler(t)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/visits?desde=01/03/2024", nil)
	authenticate(c, entity.RoleVisitadora)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
