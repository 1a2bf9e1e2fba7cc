// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
)

func TestSubmitRejectsOutOfRangeRating(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(uuid.New(), uuid.New(), rating, "text")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}

	// Validation happens before any query
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db)

	productID := uuid.New()
	authorID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(productID.String()))
	mock.ExpectQuery(`SELECT .+ FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rating"}).
			AddRow(uuid.New().String(), 4))

	_, err := svc.Submit(productID, authorID, 5, "second attempt")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// No insert was attempted, the stored set is unchanged
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSnapshotsCurrentAlias(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db)

	productID := uuid.New()
	authorID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(productID.String()))
	mock.ExpectQuery(`SELECT .+ FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// The alias comes from the users table at submission time, so a rename
	// done after the token was issued still lands on the review.
	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"alias"}).AddRow("renamed-maker"))
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	review, err := svc.Submit(productID, authorID, 5, "lovely work")
	require.NoError(t, err)

	assert.Equal(t, "renamed-maker", review.Alias)
	assert.Equal(t, 5, review.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitUnpublishedProductNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db)

	mock.ExpectQuery(`SELECT .+ FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Submit(uuid.New(), uuid.New(), 4, "never lands")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
