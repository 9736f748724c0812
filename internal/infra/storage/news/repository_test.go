package news

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/pkg/ptr"
)

var testNewsColumns = []string{"id", "title", "content", "image_path", "published", "created_at", "updated_at"}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO news (title,content,image_path,published) VALUES ($1,$2,$3,$4) RETURNING id, created_at, updated_at")).
		WithArgs("Открытие сезона", "Текст", nil, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	n, err := repo.Create(context.Background(), &domain.News{Title: "Открытие сезона", Content: "Текст"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), n.ID)
	assert.Equal(t, now, n.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_PublishedOnly(t *testing.T) {
	repo, mock := newMock(t)
	newer := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM news WHERE published = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(testNewsColumns).
			AddRow(int64(2), "Вторая", "b", "/uploads/news/2.jpg", true, newer, newer).
			AddRow(int64(1), "Первая", "a", nil, true, older, older))

	items, err := repo.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "/uploads/news/2.jpg", ptr.Deref(items[0].ImagePath))
	assert.Nil(t, items[1].ImagePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_All(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, content, image_path, published, created_at, updated_at FROM news ORDER BY created_at DESC, id DESC")).
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows(testNewsColumns))

	items, err := repo.List(context.Background(), false)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM news WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(testNewsColumns))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news SET title = $1, content = $2, image_path = $3, published = $4, updated_at = NOW() WHERE id = $5 RETURNING updated_at")).
		WithArgs("Заголовок", "Текст", nil, true, int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), &domain.News{ID: 404, Title: "Заголовок", Content: "Текст", Published: true})

	assert.ErrorIs(t, err, ErrNewsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TogglePublished(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE news SET published = NOT published, updated_at = NOW() WHERE id = $1 RETURNING published")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"published"}).AddRow(true))

	published, err := repo.TogglePublished(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, published)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM news WHERE id = $1 RETURNING image_path")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"image_path"}).AddRow(nil))

	path, err := repo.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.Nil(t, path)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM news")).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"image_path"}))

	_, err = repo.Delete(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNewsNotFound)
}
