package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virpal-singh/portfolio-backend/internal/model"
)

// ContactMessageRepository handles contact inbox data access.
type ContactMessageRepository struct {
	pool *pgxpool.Pool
}

// NewContactMessageRepository creates a new ContactMessageRepository.
func NewContactMessageRepository(pool *pgxpool.Pool) *ContactMessageRepository {
	return &ContactMessageRepository{pool: pool}
}

// Create inserts a new contact message and fills its ID and CreatedAt.
func (r *ContactMessageRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, message, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, is_read, created_at`,
		m.Name, m.Email, m.Message, m.IPAddress, m.UserAgent,
	).Scan(&m.ID, &m.IsRead, &m.CreatedAt)
}

// GetByID retrieves a single contact message.
func (r *ContactMessageRepository) GetByID(ctx context.Context, id int) (*model.ContactMessage, error) {
	m := &model.ContactMessage{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, message, is_read, ip_address, user_agent, created_at
		 FROM contact_messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.IsRead, &m.IPAddress, &m.UserAgent, &m.CreatedAt)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return m, nil
}

// ListPaginated returns a page of messages newest-first, optionally filtered
// by read state, plus the total count for the same filter.
func (r *ContactMessageRepository) ListPaginated(ctx context.Context, isRead *bool, limit, offset int) ([]model.ContactMessage, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, message, is_read, ip_address, user_agent, created_at
		 FROM contact_messages
		 WHERE ($1::bool IS NULL OR is_read = $1)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		isRead, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.IsRead, &m.IPAddress, &m.UserAgent, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE ($1::bool IS NULL OR is_read = $1)`,
		isRead,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// ToggleRead atomically flips is_read and returns the updated row.
// Returns ErrNotFound when the id does not resolve.
func (r *ContactMessageRepository) ToggleRead(ctx context.Context, id int) (*model.ContactMessage, error) {
	m := &model.ContactMessage{}
	err := r.pool.QueryRow(ctx,
		`UPDATE contact_messages SET is_read = NOT is_read WHERE id = $1
		 RETURNING id, name, email, message, is_read, ip_address, user_agent, created_at`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.IsRead, &m.IPAddress, &m.UserAgent, &m.CreatedAt)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return m, nil
}

// Delete removes a message permanently. Returns ErrNotFound when nothing
// was deleted, so a repeat delete reports not-found.
func (r *ContactMessageRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats computes the inbox counters in a single scan.
func (r *ContactMessageRepository) Stats(ctx context.Context) (*model.ContactStats, error) {
	s := &model.ContactStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE NOT is_read),
		        COUNT(*) FILTER (WHERE is_read),
		        COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		 FROM contact_messages`,
	).Scan(&s.Total, &s.Unread, &s.Read, &s.RecentWeek)
	if err != nil {
		return nil, err
	}
	return s, nil
}
