package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/repository"
)

// fakeContactStore is an in-memory ContactStore keyed by id.
type fakeContactStore struct {
	nextID   int
	messages map[int]*model.ContactMessage
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{nextID: 1, messages: map[int]*model.ContactMessage{}}
}

func (f *fakeContactStore) Create(_ context.Context, m *model.ContactMessage) error {
	m.ID = f.nextID
	f.nextID++
	m.IsRead = false
	m.CreatedAt = time.Now()
	stored := *m
	f.messages[m.ID] = &stored
	return nil
}

func (f *fakeContactStore) GetByID(_ context.Context, id int) (*model.ContactMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *m
	return &out, nil
}

func (f *fakeContactStore) ListPaginated(_ context.Context, isRead *bool, limit, offset int) ([]model.ContactMessage, int, error) {
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

func (f *fakeContactStore) ToggleRead(_ context.Context, id int) (*model.ContactMessage, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m.IsRead = !m.IsRead
	out := *m
	return &out, nil
}

func (f *fakeContactStore) Delete(_ context.Context, id int) error {
	if _, ok := f.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

func (f *fakeContactStore) Stats(_ context.Context) (*model.ContactStats, error) {
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

func newContactService(store ContactStore) *ContactMessageService {
	return NewContactMessageService(store, nil, testConfig(), zerolog.Nop())
}

func TestContactCreateNormalizesInput(t *testing.T) {
	store := newFakeContactStore()
	svc := newContactService(store)

	m, err := svc.Create(context.Background(), model.CreateContactRequest{
		Name:    "  Jane Doe  ",
		Email:   "  JANE@Example.COM ",
		Message: "  hello there  ",
	}, "203.0.113.9", "curl/8.0")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", m.Name)
	assert.Equal(t, "jane@example.com", m.Email)
	assert.Equal(t, "hello there", m.Message)
	assert.False(t, m.IsRead, "new submissions start unread")
	assert.Equal(t, "203.0.113.9", m.IPAddress)
	assert.Equal(t, "curl/8.0", m.UserAgent)

	stored, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", stored.Email)
}

func TestContactListPagination(t *testing.T) {
	store := newFakeContactStore()
	svc := newContactService(store)

	for i := 0; i < 15; i++ {
		_, err := svc.Create(context.Background(), model.CreateContactRequest{
			Name: "n", Email: "n@example.com", Message: "m",
		}, "", "")
		require.NoError(t, err)
	}

	messages, pagination, err := svc.List(context.Background(), nil, 1, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 10)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 2, pagination.TotalPages)
	assert.Equal(t, 15, pagination.TotalMessages)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)

	// Newest first.
	assert.Greater(t, messages[0].ID, messages[9].ID)

	messages, pagination, err = svc.List(context.Background(), nil, 2, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 5)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	// Invalid page/limit fall back to defaults.
	messages, pagination, err = svc.List(context.Background(), nil, -3, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 10)
	assert.Equal(t, 1, pagination.CurrentPage)
}

func TestContactListReadFilter(t *testing.T) {
	store := newFakeContactStore()
	svc := newContactService(store)

	var ids []int
	for i := 0; i < 4; i++ {
		m, err := svc.Create(context.Background(), model.CreateContactRequest{
			Name: "n", Email: "n@example.com", Message: "m",
		}, "", "")
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}
	_, err := svc.ToggleRead(context.Background(), ids[0])
	require.NoError(t, err)

	read := true
	messages, pagination, err := svc.List(context.Background(), &read, 1, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, 1, pagination.TotalMessages)

	unread := false
	messages, pagination, err = svc.List(context.Background(), &unread, 1, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, 3, pagination.TotalMessages)
}

func TestContactToggleReadRoundTrip(t *testing.T) {
	store := newFakeContactStore()
	svc := newContactService(store)

	m, err := svc.Create(context.Background(), model.CreateContactRequest{
		Name: "n", Email: "n@example.com", Message: "m",
	}, "", "")
	require.NoError(t, err)

	flipped, err := svc.ToggleRead(context.Background(), m.ID)
	require.NoError(t, err)
	assert.True(t, flipped.IsRead)

	flipped, err = svc.ToggleRead(context.Background(), m.ID)
	require.NoError(t, err)
	assert.False(t, flipped.IsRead, "two toggles restore the original value")

	_, err = svc.ToggleRead(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactDeleteIsPermanent(t *testing.T) {
	store := newFakeContactStore()
	svc := newContactService(store)

	m, err := svc.Create(context.Background(), model.CreateContactRequest{
		Name: "n", Email: "n@example.com", Message: "m",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), m.ID))

	_, err = svc.Get(context.Background(), m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(context.Background(), m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "repeat delete reports not found")
}

func TestContactStatsCounters(t *testing.T) {
	store := newFakeContactStore()
	svc := newContactService(store)

	var ids []int
	for i := 0; i < 3; i++ {
		m, err := svc.Create(context.Background(), model.CreateContactRequest{
			Name: "n", Email: "n@example.com", Message: "m",
		}, "", "")
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}
	_, err := svc.ToggleRead(context.Background(), ids[0])
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Read)
	assert.Equal(t, 2, stats.Unread)
}

func TestContactListEmptyIsNotNil(t *testing.T) {
	svc := newContactService(newFakeContactStore())

	messages, pagination, err := svc.List(context.Background(), nil, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
	assert.Equal(t, 0, pagination.TotalMessages)
	assert.Equal(t, 0, pagination.TotalPages)
}
