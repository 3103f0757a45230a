package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/intervue/platform-api/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestInterviewFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "interviews_schedule" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "feedback"}).
			AddRow(id.String(), "Scheduled", nil))

	iv, err := repo.FindByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, id, iv.ID)
	assert.Equal(t, model.InterviewScheduled, iv.Status)
	assert.Nil(t, iv.Feedback)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewFindByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "interviews_schedule"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInterviewUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)
	id := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "interviews_schedule" SET "status"=\$1`).
		WithArgs("Canceled", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), id, model.InterviewCanceled)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewUpdateStatusMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "interviews_schedule"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), uuid.NewString(), model.InterviewCanceled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Completion must land feedback and status in one statement.
func TestInterviewCompleteWithFeedback(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)
	id := uuid.NewString()
	fb := &model.InterviewFeedback{Rating: 4, Comments: "solid"}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "interviews_schedule" SET "feedback"=\$1,"status"=\$2`).
		WithArgs(sqlmock.AnyArg(), "Completed", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CompleteWithFeedback(context.Background(), id, fb)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterviewCompleteWithFeedbackMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "interviews_schedule"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.CompleteWithFeedback(context.Background(), uuid.NewString(), &model.InterviewFeedback{Rating: 3, Comments: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInterviewCountBusy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterviewRepository(db)
	id := uuid.NewString()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "interviews_schedule"`).
		WithArgs(id, "Scheduled", "In Progress", now.Add(-time.Hour), now.Add(time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountBusy(context.Background(), id, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
