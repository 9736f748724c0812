package news

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EuroAsia-BookingService/pkg/psqlbuilder"
)

var newsColumns = []string{
	"id",
	"title",
	"content",
	"image_path",
	"published",
	"created_at",
	"updated_at",
}

// Repository репозиторий новостей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория новостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новость
func (r *Repository) Create(ctx context.Context, n *domain.News) (*domain.News, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("news").
		Columns("title", "content", "image_path", "published").
		Values(n.Title, n.Content, n.ImagePath, n.Published).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// GetByID получает новость по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.News, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(newsColumns...).
		From("news").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	n, err := scanNews(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan news: %v", ErrScanRow, err)
	}

	return n, nil
}

// List получает новости от новых к старым
// publishedOnly - только опубликованные (для публичной части сайта)
func (r *Repository) List(ctx context.Context, publishedOnly bool) ([]*domain.News, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(newsColumns...).
		From("news").
		OrderBy("created_at DESC", "id DESC")

	if publishedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"published": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Update полностью заменяет поля новости
func (r *Repository) Update(ctx context.Context, n *domain.News) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("news").
		Set("title", n.Title).
		Set("content", n.Content).
		Set("image_path", n.ImagePath).
		Set("published", n.Published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": n.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNewsNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// TogglePublished инвертирует флаг публикации и возвращает новое значение
func (r *Repository) TogglePublished(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("news").
		Set("published", squirrel.Expr("NOT published")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING published").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: TogglePublished - build update query: %v", ErrBuildQuery, err)
	}

	var published bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&published)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNewsNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: TogglePublished - execute update: %v", ErrExecQuery, err)
	}

	return published, nil
}

// Delete удаляет новость и возвращает путь к картинке (для удаления файла)
func (r *Repository) Delete(ctx context.Context, id int64) (*string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("news").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING image_path").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	var imagePath *string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&imagePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNewsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return imagePath, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNews(row rowScanner) (*domain.News, error) {
	var n domain.News

	err := row.Scan(
		&n.ID,
		&n.Title,
		&n.Content,
		&n.ImagePath,
		&n.Published,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &n, nil
}
