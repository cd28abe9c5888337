package kv

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Taichi-iskw/tv-guide/internal/errors"
)

func TestPostgresStore_Get(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		setup    func(mock pgxmock.PgxPoolIface)
		want     string
		wantCode string
	}{
		{
			name: "value found",
			key:  "favorites",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"value"}).AddRow(`["7","105"]`)
				mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
					WithArgs("favorites").
					WillReturnRows(rows)
			},
			want: `["7","105"]`,
		},
		{
			name: "key not found",
			key:  "favorites",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
					WithArgs("favorites").
					WillReturnRows(pgxmock.NewRows([]string{"value"}))
			},
			wantCode: apperrors.CodeNotFound,
		},
		{
			name: "missing table",
			key:  "favorites",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
					WithArgs("favorites").
					WillReturnError(&pgconn.PgError{Code: "42P01"})
			},
			wantCode: apperrors.CodeInternal,
		},
		{
			name: "database error",
			key:  "favorites",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
					WithArgs("favorites").
					WillReturnError(assert.AnError)
			},
			wantCode: apperrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup pgxmock
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)
			store := NewPostgresStore(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			got, err := store.Get(ctx, tt.key)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "pgxmock expectations were not met")
		})
	}
}

func TestPostgresStore_Set(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock pgxmock.PgxPoolIface)
		wantCode string
	}{
		{
			name: "successful upsert",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO kv_store").
					WithArgs("favorites", `["7"]`).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "connection lost",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO kv_store").
					WithArgs("favorites", `["7"]`).
					WillReturnError(&pgconn.PgError{Code: "08006"})
			},
			wantCode: apperrors.CodeUnavailable,
		},
		{
			name: "database error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO kv_store").
					WithArgs("favorites", `["7"]`).
					WillReturnError(assert.AnError)
			},
			wantCode: apperrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)
			store := NewPostgresStore(mock)

			err = store.Set(context.Background(), "favorites", `["7"]`)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet(), "pgxmock expectations were not met")
		})
	}
}

func TestHandlePostgreSQLError(t *testing.T) {
	tests := []struct {
		code     string
		wantCode string
		contains string
	}{
		{code: "23502", wantCode: apperrors.CodeInvalidArg, contains: "required field"},
		{code: "42P01", wantCode: apperrors.CodeInternal, contains: "tvguide config migrate"},
		{code: "53300", wantCode: apperrors.CodeUnavailable, contains: "connection limit"},
		{code: "XX000", wantCode: apperrors.CodeInternal, contains: "PostgreSQL code: XX000"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			appErr := handlePostgreSQLError(&pgconn.PgError{Code: tt.code}, "failed to get value")
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Contains(t, appErr.Message, tt.contains)
		})
	}

	assert.Nil(t, handlePostgreSQLError(nil, "noop"))
}
