package postgres

import (
	"fmt"
	"testing"

	"visitadoras/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation from driver",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			want: repository.ErrDuplicateKey,
		},
		{
			name: "unique violation translated by gorm",
			err:  gorm.ErrDuplicatedKey,
			want: repository.ErrDuplicateKey,
		},
		{
			name: "row level security",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "42501", Message: "permission denied for table comisiones_mensuales"}),
			want: repository.ErrPermissionDenied,
		},
		{
			name: "generated column",
			err:  &pgconn.PgError{Code: "428C9", Message: `cannot insert a non-DEFAULT value into column "total_comision"`},
			want: repository.ErrGeneratedColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateStoreError(tt.err, "failed to write")
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateStoreError_Passthrough(t *testing.T) {
	cause := errors.New("connection reset")

	got := translateStoreError(cause, "failed to write")

	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, repository.ErrDuplicateKey)
	assert.Contains(t, got.Error(), "failed to write")
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("timeout")))
}
