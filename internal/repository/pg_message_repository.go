package repository

import (
	"context"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

// Save inserts a messages row and populates msg.ID and timestamps from RETURNING.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, phone, message, status, user_id)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		msg.Name, msg.Email, msg.Phone, msg.Message, msg.Status, msg.UserID,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	return mapErr(err)
}

// List returns all messages newest first with the owning user joined in.
func (r *PgMessageRepository) List(ctx context.Context) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT m.id, m.name, m.email, COALESCE(m.phone, ''), m.message, m.status,
		        m.user_id, m.created_at, m.updated_at,
		        u.id, COALESCE(u.name, ''), u.email
		 FROM messages m
		 LEFT JOIN users u ON u.id = m.user_id
		 ORDER BY m.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		var uID, uName, uEmail *string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.Status,
			&m.UserID, &m.CreatedAt, &m.UpdatedAt, &uID, &uName, &uEmail); err != nil {
			return nil, err
		}
		if uID != nil {
			m.User = &model.UserSummary{ID: *uID, Email: *uEmail}
			if uName != nil {
				m.User.Name = *uName
			}
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// UpdateStatus sets the status of a message and returns the updated row.
func (r *PgMessageRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Message, error) {
	var m model.Message
	err := r.pool.QueryRow(ctx,
		`UPDATE messages SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING id, name, email, COALESCE(phone, ''), message, status, user_id, created_at, updated_at`,
		status, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.Status, &m.UserID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &m, nil
}

func (r *PgMessageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
