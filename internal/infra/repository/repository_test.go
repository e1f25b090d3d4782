package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestCreateAppointment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	ap := &models.Appointment{
		UserID:     1,
		ProviderID: 2,
		Date:       time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))

	assert.Equal(t, uint(7), ap.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentTranslatesActiveSlotViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: ActiveSlotIndex})
	mock.ExpectRollback()

	err := repo.CreateAppointment(context.Background(), &models.Appointment{
		UserID:     1,
		ProviderID: 2,
		Date:       time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentPassesOtherErrors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.CreateAppointment(context.Background(), &models.Appointment{UserID: 1, ProviderID: 2})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestFindActiveByProviderAndDateNone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE provider_id = \$1 AND canceled_at IS NULL AND date = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ap, err := repo.FindActiveByProviderAndDate(context.Background(), 2, time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Nil(t, ap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveByProviderAndDateFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)
	date := time.Date(2099, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "provider_id", "date"}).
			AddRow(3, 1, 2, date))

	ap, err := repo.FindActiveByProviderAndDate(context.Background(), 2, date)

	require.NoError(t, err)
	require.NotNil(t, ap)
	assert.Equal(t, uint(3), ap.ID)
	assert.Equal(t, uint(2), ap.ProviderID)
}

func TestMarkCanceled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)
	now := time.Date(2099, 1, 1, 6, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET .* WHERE id = \$\d AND canceled_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.MarkCanceled(context.Background(), 3, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCanceledAlreadyCanceled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)
	now := time.Date(2099, 1, 1, 6, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.MarkCanceled(context.Background(), 3, now)

	assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), &models.User{Name: "A", Email: "a@example.com", PasswordHash: "x"})

	assert.ErrorIs(t, err, userdomain.ErrEmailTaken)
}

func TestGetUserByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	u, err := repo.GetUserByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSetAvatarUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "avatar_id"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.SetAvatar(context.Background(), 42, 1)

	assert.ErrorIs(t, err, userdomain.ErrNotFound)
}

func TestListNotificationsForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationGormRepository(db)
	at := time.Date(2099, 1, 1, 6, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "user_id", "read", "created_at"}).
			AddRow(2, "second", 5, false, at.Add(time.Minute)).
			AddRow(1, "first", 5, true, at))

	out, err := repo.ListForUser(context.Background(), 5, 20)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "second", out[0].Content)
	assert.True(t, out[1].Read)
}
