package application

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
	repo "github.com/oksasatya/peopledesk/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// In-memory fakes for the collaborator contracts in ports.go and the domain
// repositories, so service behaviour is testable without Postgres, Redis,
// RabbitMQ or GCS.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User // by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = "user-" + strconv.Itoa(r.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakeLeaveRepo struct {
	mu     sync.Mutex
	leaves []*entity.Leave
	nextID int
}

func newFakeLeaveRepo() *fakeLeaveRepo { return &fakeLeaveRepo{} }

func (r *fakeLeaveRepo) Create(l *entity.Leave) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	l.ID = "leave-" + strconv.Itoa(r.nextID)
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	cp := *l
	r.leaves = append(r.leaves, &cp)
	return nil
}

func (r *fakeLeaveRepo) GetByID(id, userID string) (*entity.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.leaves {
		if l.ID == id && l.UserID == userID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLeaveRepo) ListByUser(userID string, f repo.LeaveFilter) ([]*entity.Leave, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Leave
	// newest first, mirroring the ORDER BY created_at DESC in the SQL store
	for i := len(r.leaves) - 1; i >= 0; i-- {
		l := r.leaves[i]
		if l.UserID != userID {
			continue
		}
		if f.LeaveType != "" && l.LeaveType != f.LeaveType {
			continue
		}
		cp := *l
		matched = append(matched, &cp)
	}
	total := len(matched)
	offset := (f.Page - 1) * f.Limit
	if offset >= total {
		return []*entity.Leave{}, total, nil
	}
	end := offset + f.Limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *fakeLeaveRepo) HasOverlap(userID string, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.leaves {
		if l.UserID != userID || l.Status == entity.LeaveRejected {
			continue
		}
		if !start.After(l.EndDate) && !end.Before(l.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

type otpEntry struct {
	code   string
	expiry time.Time
}

type fakeOTPCache struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	puts    int
}

func newFakeOTPCache() *fakeOTPCache {
	return &fakeOTPCache{entries: make(map[string]otpEntry)}
}

func (c *fakeOTPCache) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.entries[email] = otpEntry{code: code, expiry: time.Now().Add(ttl)}
	return nil
}

func (c *fakeOTPCache) Consume(ctx context.Context, email, code string) (OTPResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[email]
	if !ok || time.Now().After(e.expiry) {
		delete(c.entries, email)
		return OTPMissing, nil
	}
	if e.code != code {
		return OTPMismatch, nil
	}
	delete(c.entries, email)
	return OTPMatched, nil
}

func (c *fakeOTPCache) Delete(ctx context.Context, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, email)
	return nil
}

func (c *fakeOTPCache) code(email string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[email].code
}

func (c *fakeOTPCache) has(email string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[email]
	return ok
}

type fakeQueue struct {
	mu     sync.Mutex
	jobs   []any
	failed bool
}

func (q *fakeQueue) PublishJSON(ctx context.Context, body any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failed {
		return context.DeadlineExceeded
	}
	q.jobs = append(q.jobs, body)
	return nil
}

func (q *fakeQueue) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

type fakeStore struct {
	mu      sync.Mutex
	deleted []string
	signErr error
}

func (s *fakeStore) SignedUploadURL(key, contentType string, ttl time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "https://upload.example.com/" + key, nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (s *fakeStore) KeyForURL(url string) (string, bool) {
	const prefix = "https://cdn.example.com/"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):], true
	}
	return "", false
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, key)
	return nil
}

type fakeIndex struct {
	mu      sync.Mutex
	indexed []*entity.User
	results []map[string]any
}

func (i *fakeIndex) Index(ctx context.Context, u *entity.User) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	cp := *u
	i.indexed = append(i.indexed, &cp)
	return nil
}

func (i *fakeIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.results) > size {
		return i.results[:size], nil
	}
	return i.results, nil
}
