package calendar

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EuroAsia-BookingService/pkg/ptr"
)

var christmas = time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_UpsertPending(t *testing.T) {
	t.Run("free date is taken", func(t *testing.T) {
		repo, mock := newMock(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE calendar.status = 'free' RETURNING")).
			WithArgs("2025-12-25", "pending", int64(7), nil).
			WillReturnRows(sqlmock.NewRows(dayColumns).AddRow(int64(1), christmas, "pending", int64(7), nil, now))

		day, err := repo.UpsertPending(context.Background(), christmas, 7)

		require.NoError(t, err)
		assert.True(t, day.IsPending())
		assert.True(t, day.IsHeldBy(7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("held date is not overwritten", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO calendar")).
			WillReturnRows(sqlmock.NewRows(dayColumns))

		_, err := repo.UpsertPending(context.Background(), christmas, 8)

		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO calendar")).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.UpsertPending(context.Background(), christmas, 8)

		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("serialization failure", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO calendar")).
			WillReturnError(&pq.Error{Code: "40001"})

		_, err := repo.UpsertPending(context.Background(), christmas, 8)

		assert.ErrorIs(t, err, ErrSerialization)
	})
}

func TestRepository_MarkManualBusy(t *testing.T) {
	repo, mock := newMock(t)
	valentine := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("order_id = NULL, manual_reason = EXCLUDED.manual_reason RETURNING")).
		WithArgs("2026-02-14", "busy", nil, "venue closed").
		WillReturnRows(sqlmock.NewRows(dayColumns).AddRow(int64(4), valentine, "busy", nil, "venue closed", time.Now()))

	day, err := repo.MarkManualBusy(context.Background(), valentine, ptr.Ptr("venue closed"))

	require.NoError(t, err)
	assert.True(t, day.IsBusy())
	assert.False(t, day.IsOrderLinked())
	assert.Equal(t, "venue closed", ptr.Deref(day.ManualReason))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkFreeByOrder(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE calendar SET status = $1, order_id = $2 WHERE order_id = $3")).
		WithArgs("free", nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.MarkFreeByOrder(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM calendar WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestRepository_GetByDate_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM calendar WHERE date = $1")).
		WithArgs("2025-12-25").
		WillReturnRows(sqlmock.NewRows(dayColumns))

	_, err := repo.GetByDate(context.Background(), christmas)

	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestRepository_List_FiltersByRange(t *testing.T) {
	repo, mock := newMock(t)
	end := christmas.AddDate(0, 0, 7)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.date >= $1 AND c.date <= $2 ORDER BY c.date ASC")).
		WithArgs("2025-12-25", "2026-01-01").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "date", "status", "order_id", "manual_reason", "created_at", "client_name", "client_phone",
		}).AddRow(int64(1), christmas, "busy", int64(7), nil, time.Now(), "Анна", "+7999"))

	entries, err := repo.List(context.Background(), domain.CalendarFilter{StartDate: &christmas, EndDate: &end})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Анна", ptr.Deref(entries[0].ClientName))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListPastBusy(t *testing.T) {
	repo, mock := newMock(t)
	today := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("= 0 ORDER BY c.date DESC LIMIT 5")).
		WithArgs("busy", "2026-01-10").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "date", "status", "order_id", "manual_reason", "created_at", "client_name", "highlights_count",
		}).AddRow(int64(1), christmas, "busy", int64(7), nil, time.Now(), "Анна", 0))

	events, err := repo.ListPastBusy(context.Background(), domain.PastBusyFilter{
		Before:                today,
		OnlyWithoutHighlights: true,
		Limit:                 5,
	})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].NeedsHighlights())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM calendar")).
		WillReturnError(errors.New("connection reset"))

	err := repo.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByDate_SerializationFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM calendar WHERE date = $1 FOR UPDATE")).
		WithArgs("2025-12-25").
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = repo.GetByDate(dbmetrics.WithTx(context.Background(), tx), christmas)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.NotErrorIs(t, err, ErrScanRow)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
