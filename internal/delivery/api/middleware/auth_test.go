package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/repository"
	"visitadoras/internal/domain/service"
	mockRepo "visitadoras/internal/mocks/repository"
	mockSvc "visitadoras/internal/mocks/service"
	"visitadoras/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	m := NewAuthMiddleware(tokenSvc, profileRepo)

	profileID := uuid.New()
	tokenSvc.EXPECT().
		ValidateAccessToken("good").
		Return(&service.Claims{ProfileID: profileID, Role: entity.RoleVisitadora, Type: service.TokenTypeAccess}, nil)
	profileRepo.EXPECT().
		FindByID(mock.Anything, profileID).
		Return(&entity.Profile{ID: profileID, Role: entity.RoleVisitadora, Active: true}, nil)

	c, rec := newAuthContext("Bearer good")

	var requester usecase.Requester
	err := m.Authenticate(func(c echo.Context) error {
		requester, _ = GetRequester(c)

		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, usecase.Requester{ProfileID: profileID, Role: entity.RoleVisitadora}, requester)

	gotID, ok := GetProfileID(c)
	assert.True(t, ok)
	assert.Equal(t, profileID, gotID)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokenSvc *mockSvc.MockTokenService, profileRepo *mockRepo.MockProfileRepository)
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokenSvc *mockSvc.MockTokenService, _ *mockRepo.MockProfileRepository) {
				tokenSvc.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("token is expired"))
			},
		},
		{
			name:   "unknown role",
			header: "Bearer odd",
			setup: func(tokenSvc *mockSvc.MockTokenService, _ *mockRepo.MockProfileRepository) {
				tokenSvc.EXPECT().ValidateAccessToken("odd").Return(&service.Claims{ProfileID: uuid.New(), Role: "merchant"}, nil)
			},
		},
		{
			name:   "deactivated account",
			header: "Bearer stale",
			setup: func(tokenSvc *mockSvc.MockTokenService, profileRepo *mockRepo.MockProfileRepository) {
				id := uuid.New()
				tokenSvc.EXPECT().ValidateAccessToken("stale").Return(&service.Claims{ProfileID: id, Role: entity.RoleVisitadora}, nil)
				profileRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Profile{ID: id, Role: entity.RoleVisitadora, Active: false}, nil)
			},
		},
		{
			name:   "deleted account",
			header: "Bearer gone",
			setup: func(tokenSvc *mockSvc.MockTokenService, profileRepo *mockRepo.MockProfileRepository) {
				id := uuid.New()
				tokenSvc.EXPECT().ValidateAccessToken("gone").Return(&service.Claims{ProfileID: id, Role: entity.RoleAdmin}, nil)
				profileRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProfileNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			if tt.setup != nil {
				tt.setup(tokenSvc, profileRepo)
			}

			c, rec := newAuthContext(tt.header)
			called := false

			err := NewAuthMiddleware(tokenSvc, profileRepo).Authenticate(func(c echo.Context) error {
				called = true

				return nil
			})(c)

			require.NoError(t, err)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockProfileRepository(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("matching role passes", func(t *testing.T) {
		c, rec := newAuthContext("")
		SetIdentity(c, uuid.New(), entity.RoleAdmin)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("visitadora cannot reach admin routes", func(t *testing.T) {
		c, rec := newAuthContext("")
		SetIdentity(c, uuid.New(), entity.RoleVisitadora)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated context", func(t *testing.T) {
		c, rec := newAuthContext("")

		require.NoError(t, m.RequireRole(entity.RoleVisitadora)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
