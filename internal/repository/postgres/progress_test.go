package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalworks/dialysis-api/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func progressRow(logID int64, action string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"log_id", "patient_id", "recorded_by_user_id", "action", "notes",
		"signature_text", "signature_image", "qualification", "created_at",
	}).AddRow(logID, nil, 9, action, "stable", nil, nil, "RN", "2026-08-31 08:00")
}

func TestCreateBatchCommitsAllEntries(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO clinical_progress_logs").
		WillReturnRows(progressRow(1, "Dialysis commenced"))
	mock.ExpectQuery("INSERT INTO clinical_progress_logs").
		WillReturnRows(progressRow(2, "Observations recorded"))
	mock.ExpectCommit()

	repo := NewProgressRepository(db)
	saved, err := repo.CreateBatch(context.Background(), 9, nil, []model.ProgressEntryInput{
		{Action: "Dialysis commenced", Notes: "stable", Qualification: "RN"},
		{Action: "Observations recorded", Notes: "stable", Qualification: "RN"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(1), saved[0].LogID)
	assert.Equal(t, int64(2), saved[1].LogID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatchRollsBackOnMidBatchFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO clinical_progress_logs").
		WillReturnRows(progressRow(1, "Dialysis commenced"))
	mock.ExpectQuery("INSERT INTO clinical_progress_logs").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewProgressRepository(db)
	saved, err := repo.CreateBatch(context.Background(), 9, nil, []model.ProgressEntryInput{
		{Action: "Dialysis commenced", Notes: "stable", Qualification: "RN"},
		{Action: "Observations recorded", Notes: "stable", Qualification: "RN"},
	})
	require.Error(t, err)
	assert.Nil(t, saved)

	// The transaction rolled back and nothing was committed.
	assert.NoError(t, mock.ExpectationsWereMet())
}
