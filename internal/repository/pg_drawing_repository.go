package repository

import (
	"context"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgDrawingRepository is the PostgreSQL implementation of DrawingRepository.
type PgDrawingRepository struct {
	pool *pgxpool.Pool
}

// NewPgDrawingRepository creates a PgDrawingRepository backed by the given pool.
func NewPgDrawingRepository(pool *pgxpool.Pool) *PgDrawingRepository {
	return &PgDrawingRepository{pool: pool}
}

var _ DrawingRepository = (*PgDrawingRepository)(nil)

const drawingSelectCols = `id, title, COALESCE(description, ''), image_url, public_id, created_at, updated_at`

func scanDrawing(scan func(...any) error) (*model.Drawing, error) {
	var d model.Drawing
	if err := scan(&d.ID, &d.Title, &d.Description, &d.ImageURL, &d.PublicID,
		&d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &d, nil
}

// Save inserts a drawings row and populates d.ID and timestamps from RETURNING.
func (r *PgDrawingRepository) Save(ctx context.Context, d *model.Drawing) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO drawings (title, description, image_url, public_id)
		 VALUES ($1, NULLIF($2, ''), $3, $4)
		 RETURNING id, created_at, updated_at`,
		d.Title, d.Description, d.ImageURL, d.PublicID,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return mapErr(err)
}

func (r *PgDrawingRepository) List(ctx context.Context) ([]*model.Drawing, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+drawingSelectCols+` FROM drawings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drawings []*model.Drawing
	for rows.Next() {
		d, err := scanDrawing(rows.Scan)
		if err != nil {
			return nil, err
		}
		drawings = append(drawings, d)
	}
	return drawings, rows.Err()
}

func (r *PgDrawingRepository) FindByID(ctx context.Context, id string) (*model.Drawing, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+drawingSelectCols+` FROM drawings WHERE id = $1`, id)
	return scanDrawing(row.Scan)
}

func (r *PgDrawingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM drawings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
