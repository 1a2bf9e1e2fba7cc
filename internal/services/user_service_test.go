// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
)

func TestEnsureProfileIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	userID := uuid.New()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT .+ FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "alias"}).
				AddRow(userID.String(), "zoe@example.com", "maker-1a2b3c4d"))
	}

	first, err := svc.EnsureProfile(userID, "zoe@example.com")
	require.NoError(t, err)
	second, err := svc.EnsureProfile(userID, "zoe@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Alias, second.Alias)

	// Neither call wrote anything
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAliasRejectsMalformedAlias(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	_, err := svc.UpdateAlias(uuid.New(), "ab")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAliasRejectsTakenAlias(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "alias"}).
			AddRow(userID.String(), "old-alias"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.UpdateAlias(userID, "taken-alias")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
