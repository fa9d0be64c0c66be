package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIsDownload(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/api/v1/reports/full", want: true},
		{path: "/api/v1/admin/reports/commissions", want: true},
		{path: "/api/v1/physicians/export", want: true},
		{path: "/api/v1/admin/imports/template", want: true},
		{path: "/api/v1/physicians", want: false},
		{path: "/api/v1/commissions/monthly", want: false},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())
			assert.Equal(t, tt.want, isDownload(c))
		})
	}
}
