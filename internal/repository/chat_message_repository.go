package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virpal-singh/portfolio-backend/internal/model"
)

// ChatMessageRepository handles chat transcript data access.
type ChatMessageRepository struct {
	pool *pgxpool.Pool
}

// NewChatMessageRepository creates a new ChatMessageRepository.
func NewChatMessageRepository(pool *pgxpool.Pool) *ChatMessageRepository {
	return &ChatMessageRepository{pool: pool}
}

// Create inserts one chat turn and fills its ID and CreatedAt.
func (r *ChatMessageRepository) Create(ctx context.Context, m *model.ChatMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (session_id, user_message, bot_response, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		m.SessionID, m.UserMessage, m.BotResponse, m.IPAddress, m.UserAgent,
	).Scan(&m.ID, &m.CreatedAt)
}

// ListBySession returns a page of a session's turns oldest-first, plus the
// session's total turn count.
func (r *ChatMessageRepository) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]model.ChatMessage, int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, user_message, bot_response, ip_address, user_agent, created_at
		 FROM chat_messages
		 WHERE session_id = $1
		 ORDER BY created_at ASC, id ASC
		 LIMIT $2 OFFSET $3`,
		sessionID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.UserMessage, &m.BotResponse, &m.IPAddress, &m.UserAgent, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE session_id = $1`, sessionID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// Stats computes chat usage counters in a single scan. The average is
// derived in the service layer so the zero-session case stays explicit.
func (r *ChatMessageRepository) Stats(ctx context.Context) (*model.ChatStats, error) {
	s := &model.ChatStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(DISTINCT session_id),
		        COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		 FROM chat_messages`,
	).Scan(&s.TotalMessages, &s.UniqueSessions, &s.RecentWeek)
	if err != nil {
		return nil, err
	}
	return s, nil
}
