package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/virpal-singh/portfolio-backend/internal/ai"
	"github.com/virpal-singh/portfolio-backend/internal/config"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/response"
)

// chatFallbackResponse is substituted whenever the upstream call (or the
// first persistence attempt) fails. The chat widget never surfaces a hard
// failure to visitors; it points them at direct contact channels instead.
const chatFallbackResponse = "I'm sorry, I'm having trouble processing your request right now. " +
	"Please feel free to contact Virpal directly at 77virpalsinh77@gmail.com " +
	"or check out his projects on GitHub: https://github.com/virpal-singh"

// ChatStore is the persistence surface ChatService needs.
type ChatStore interface {
	Create(ctx context.Context, m *model.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]model.ChatMessage, int, error)
	Stats(ctx context.Context) (*model.ChatStats, error)
}

// ChatService proxies chat turns to the generative provider and records the
// transcript. Each turn is stateless request/response; the session id is an
// opaque grouping key with no server-enforced lifecycle.
type ChatService struct {
	store     ChatStore
	generator ai.Generator
	rdb       *redis.Client
	ttl       time.Duration
	log       zerolog.Logger
}

// NewChatService creates a new ChatService. rdb may be nil, in which case
// stats are computed on every call.
func NewChatService(store ChatStore, generator ai.Generator, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *ChatService {
	return &ChatService{
		store:     store,
		generator: generator,
		rdb:       rdb,
		ttl:       cfg.StatsCacheTTL,
		log:       log.With().Str("component", "chat_service").Logger(),
	}
}

// Send runs one chat turn: build the prompt, call the provider, persist the
// turn. The returned bool marks a fallback response. Upstream failure never
// surfaces as an error — the fallback text is persisted and returned as a
// normal turn. Only a persistence failure on a real completion that cannot
// be recovered into the fallback path would bubble up, and even that is
// absorbed: the second (fallback) write failure is logged and swallowed.
func (s *ChatService) Send(ctx context.Context, req model.SendChatRequest, ip, userAgent string) (*model.ChatMessage, bool, error) {
	question := strings.TrimSpace(req.Message)

	botResponse, genErr := s.generator.Generate(ctx, ai.BuildPrompt(question))
	fallback := genErr != nil
	if fallback {
		s.log.Warn().Err(genErr).Str("session_id", req.SessionID).Msg("generation failed, serving fallback")
		botResponse = chatFallbackResponse
	}

	m := &model.ChatMessage{
		SessionID:   req.SessionID,
		UserMessage: question,
		BotResponse: botResponse,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}

	if err := s.store.Create(ctx, m); err != nil {
		if fallback {
			s.log.Error().Err(err).Msg("persisting fallback turn failed")
		} else {
			// The completion succeeded but could not be stored. Degrade to
			// the fallback policy so the visitor still gets an answer.
			fallback = true
			m.BotResponse = chatFallbackResponse
			if err2 := s.store.Create(ctx, m); err2 != nil {
				s.log.Error().Err(err2).Msg("persisting fallback turn failed")
			}
		}
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	s.invalidateStats(ctx)
	return m, fallback, nil
}

// History returns a session's turns oldest-first with pagination metadata.
// Turns from other sessions never appear.
func (s *ChatService) History(ctx context.Context, sessionID string, page, limit int) ([]model.ChatMessage, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	messages, total, err := s.store.ListBySession(ctx, sessionID, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}

	return messages, response.NewPagination(page, limit, total), nil
}

// Stats returns chat usage counters, cached in Redis for a short TTL. The
// per-session average is 0 when no sessions exist.
func (s *ChatService) Stats(ctx context.Context) (*model.ChatStats, error) {
	key := config.CacheKey.ChatStatsKey()

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached model.ChatStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if stats.UniqueSessions > 0 {
		stats.AverageMessagesPerSession = int(math.Round(float64(stats.TotalMessages) / float64(stats.UniqueSessions)))
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

// Ping issues a minimal upstream call, for the connectivity diagnostic.
func (s *ChatService) Ping(ctx context.Context) (string, error) {
	return s.generator.Generate(ctx, "Say hello")
}

func (s *ChatService) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, config.CacheKey.ChatStatsKey()).Err(); err != nil {
		s.log.Debug().Err(err).Msg("stats cache invalidation failed")
	}
}
