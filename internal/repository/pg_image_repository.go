package repository

import (
	"context"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgImageRepository is the PostgreSQL implementation of ImageRepository.
type PgImageRepository struct {
	pool *pgxpool.Pool
}

// NewPgImageRepository creates a PgImageRepository backed by the given pool.
func NewPgImageRepository(pool *pgxpool.Pool) *PgImageRepository {
	return &PgImageRepository{pool: pool}
}

var _ ImageRepository = (*PgImageRepository)(nil)

const imageSelectCols = `id, title, COALESCE(description, ''), category, image_url, public_id, created_at, updated_at`

func scanImage(scan func(...any) error) (*model.Image, error) {
	var img model.Image
	if err := scan(&img.ID, &img.Title, &img.Description, &img.Category,
		&img.ImageURL, &img.PublicID, &img.CreatedAt, &img.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &img, nil
}

// Save inserts an images row and populates img.ID and timestamps from RETURNING.
func (r *PgImageRepository) Save(ctx context.Context, img *model.Image) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO images (title, description, category, image_url, public_id)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		img.Title, img.Description, img.Category, img.ImageURL, img.PublicID,
	).Scan(&img.ID, &img.CreatedAt, &img.UpdatedAt)
	return mapErr(err)
}

func (r *PgImageRepository) List(ctx context.Context, category string) ([]*model.Image, error) {
	query := `SELECT ` + imageSelectCols + ` FROM images ORDER BY created_at DESC`
	args := []any{}
	if category != "" {
		query = `SELECT ` + imageSelectCols + ` FROM images WHERE category = $1 ORDER BY created_at DESC`
		args = append(args, category)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*model.Image
	for rows.Next() {
		img, err := scanImage(rows.Scan)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *PgImageRepository) FindByID(ctx context.Context, id string) (*model.Image, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+imageSelectCols+` FROM images WHERE id = $1`, id)
	return scanImage(row.Scan)
}

func (r *PgImageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
