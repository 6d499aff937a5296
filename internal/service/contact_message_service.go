package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/virpal-singh/portfolio-backend/internal/config"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/response"
)

// ContactStore is the persistence surface ContactMessageService needs.
type ContactStore interface {
	Create(ctx context.Context, m *model.ContactMessage) error
	GetByID(ctx context.Context, id int) (*model.ContactMessage, error)
	ListPaginated(ctx context.Context, isRead *bool, limit, offset int) ([]model.ContactMessage, int, error)
	ToggleRead(ctx context.Context, id int) (*model.ContactMessage, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context) (*model.ContactStats, error)
}

// ContactMessageService handles the contact inbox business logic.
type ContactMessageService struct {
	store ContactStore
	rdb   *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

// NewContactMessageService creates a new ContactMessageService. rdb may be
// nil, in which case stats are computed on every call.
func NewContactMessageService(store ContactStore, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *ContactMessageService {
	return &ContactMessageService{
		store: store,
		rdb:   rdb,
		ttl:   cfg.StatsCacheTTL,
		log:   log.With().Str("component", "contact_service").Logger(),
	}
}

// Create persists a submission. All string fields are trimmed and the email
// is lowercased before storage; content fields are immutable afterwards.
func (s *ContactMessageService) Create(ctx context.Context, req model.CreateContactRequest, ip, userAgent string) (*model.ContactMessage, error) {
	m := &model.ContactMessage{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Message:   strings.TrimSpace(req.Message),
		IPAddress: ip,
		UserAgent: userAgent,
	}

	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return m, nil
}

// List returns a page of messages newest-first with pagination metadata.
func (s *ContactMessageService) List(ctx context.Context, isRead *bool, page, limit int) ([]model.ContactMessage, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	messages, total, err := s.store.ListPaginated(ctx, isRead, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}

	return messages, response.NewPagination(page, limit, total), nil
}

// Get resolves a single message by id.
func (s *ContactMessageService) Get(ctx context.Context, id int) (*model.ContactMessage, error) {
	return s.store.GetByID(ctx, id)
}

// ToggleRead flips the read flag and returns the updated message.
func (s *ContactMessageService) ToggleRead(ctx context.Context, id int) (*model.ContactMessage, error) {
	m, err := s.store.ToggleRead(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return m, nil
}

// Delete removes a message permanently. No soft-delete, no undo.
func (s *ContactMessageService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

// Stats returns the inbox counters, cached in Redis for a short TTL.
func (s *ContactMessageService) Stats(ctx context.Context) (*model.ContactStats, error) {
	key := config.CacheKey.MessageStatsKey()

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached model.ContactStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.log.Debug().Err(err).Msg("stats cache write failed")
			}
		}
	}

	return stats, nil
}

func (s *ContactMessageService) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, config.CacheKey.MessageStatsKey()).Err(); err != nil {
		s.log.Debug().Err(err).Msg("stats cache invalidation failed")
	}
}
