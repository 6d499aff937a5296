package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virpal-singh/portfolio-backend/internal/config"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/repository"
	"github.com/virpal-singh/portfolio-backend/internal/response"
	"github.com/virpal-singh/portfolio-backend/internal/service"
	"github.com/virpal-singh/portfolio-backend/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Setup()
}

func testConfig() *config.Config {
	return &config.Config{StatsCacheTTL: time.Minute}
}

// memContactStore is an in-memory service.ContactStore.
type memContactStore struct {
	nextID   int
	messages map[int]*model.ContactMessage
}

func newMemContactStore() *memContactStore {
	return &memContactStore{nextID: 1, messages: map[int]*model.ContactMessage{}}
}

func (f *memContactStore) Create(_ context.Context, m *model.ContactMessage) error {
	m.ID = f.nextID
	f.nextID++
	m.CreatedAt = time.Now()
	stored := *m
	f.messages[m.ID] = &stored
	return nil
}

func (f *memContactStore) GetByID(_ context.Context, id int) (*model.ContactMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *m
	return &out, nil
}

func (f *memContactStore) ListPaginated(_ context.Context, isRead *bool, limit, offset int) ([]model.ContactMessage, int, error) {
	var all []model.ContactMessage
	for _, m := range f.messages {
		if isRead != nil && m.IsRead != *isRead {
			continue
		}
		all = append(all, *m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *memContactStore) ToggleRead(_ context.Context, id int) (*model.ContactMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m.IsRead = !m.IsRead
	out := *m
	return &out, nil
}

func (f *memContactStore) Delete(_ context.Context, id int) error {
	if _, ok := f.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

func (f *memContactStore) Stats(_ context.Context) (*model.ContactStats, error) {
	stats := &model.ContactStats{}
	for _, m := range f.messages {
		stats.Total++
		if m.IsRead {
			stats.Read++
		} else {
			stats.Unread++
		}
	}
	return stats, nil
}

func newMessageRouter(store *memContactStore) *gin.Engine {
	svc := service.NewContactMessageService(store, nil, testConfig(), zerolog.Nop())
	h := NewMessageHandler(svc)

	r := gin.New()
	r.POST("/api/messages", h.Create)
	r.GET("/api/messages", h.List)
	r.GET("/api/messages/stats", h.Stats)
	r.GET("/api/messages/:id", h.Get)
	r.PATCH("/api/messages/:id/read", h.ToggleRead)
	r.DELETE("/api/messages/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "go-test")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func newAuthedRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func doRequest(t *testing.T, r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateMessageSuccess(t *testing.T) {
	store := newMemContactStore()
	r := newMessageRouter(store)

	w, resp := doJSON(t, r, http.MethodPost, "/api/messages", gin.H{
		"name":    "Jane",
		"email":   "JANE@Example.com",
		"message": "hello",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Message sent successfully!", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])
	assert.Equal(t, "Jane", data["name"])
	require.Len(t, store.messages, 1)
	assert.Equal(t, "go-test", store.messages[1].UserAgent)
}

func TestCreateMessageValidation(t *testing.T) {
	store := newMemContactStore()
	r := newMessageRouter(store)

	w, resp := doJSON(t, r, http.MethodPost, "/api/messages", gin.H{
		"name":  "Jane",
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "message")
	assert.Empty(t, store.messages, "invalid submissions are not persisted")
}

func TestCreateMessageBlankFieldsRejected(t *testing.T) {
	store := newMemContactStore()
	r := newMessageRouter(store)

	w, resp := doJSON(t, r, http.MethodPost, "/api/messages", gin.H{
		"name":    "   ",
		"email":   "jane@example.com",
		"message": "\t\n",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "message")
	assert.Empty(t, store.messages)
}

func TestListMessagesPagination(t *testing.T) {
	store := newMemContactStore()
	r := newMessageRouter(store)

	for i := 0; i < 12; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/messages", gin.H{
			"name": "n", "email": "n@example.com", "message": "m",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, resp := doJSON(t, r, http.MethodGet, "/api/messages?page=2&limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 12, resp.Pagination.TotalMessages)
	assert.False(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
	assert.Len(t, resp.Data.([]interface{}), 2)
}

func TestGetMessageNotFound(t *testing.T) {
	r := newMessageRouter(newMemContactStore())

	w, resp := doJSON(t, r, http.MethodGet, "/api/messages/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Message not found", resp.Message)

	// A non-numeric id resolves to the same not-found answer.
	w, _ = doJSON(t, r, http.MethodGet, "/api/messages/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleReadTwiceRestoresState(t *testing.T) {
	store := newMemContactStore()
	r := newMessageRouter(store)

	w, _ := doJSON(t, r, http.MethodPost, "/api/messages", gin.H{
		"name": "n", "email": "n@example.com", "message": "m",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, r, http.MethodPatch, "/api/messages/1/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message marked as read", resp.Message)

	w, resp = doJSON(t, r, http.MethodPatch, "/api/messages/1/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message marked as unread", resp.Message)
	assert.False(t, store.messages[1].IsRead)
}

func TestDeleteMessageTwice(t *testing.T) {
	store := newMemContactStore()
	r := newMessageRouter(store)

	w, _ := doJSON(t, r, http.MethodPost, "/api/messages", gin.H{
		"name": "n", "email": "n@example.com", "message": "m",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, r, http.MethodDelete, "/api/messages/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	w, resp = doJSON(t, r, http.MethodDelete, "/api/messages/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
}

func TestMessageStatsEndpoint(t *testing.T) {
	store := newMemContactStore()
	r := newMessageRouter(store)

	for i := 0; i < 2; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/messages", gin.H{
			"name": "n", "email": "n@example.com", "message": "m",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w, _ := doJSON(t, r, http.MethodPatch, "/api/messages/1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodGet, "/api/messages/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["unread"])
	assert.Equal(t, float64(1), data["read"])
}
