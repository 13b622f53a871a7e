package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"
)

func testMetrics() *metrics.Metrics {
	return metrics.NewMetrics("test", prometheus.NewRegistry())
}

var nopLogger = logger.NewNopLogger()

type fakeFlightRepo struct {
	flights []entity.Flight
	err     error
}

func (r *fakeFlightRepo) List(ctx context.Context) ([]entity.Flight, error) {
	return r.flights, r.err
}

func (r *fakeFlightRepo) FindByNumber(ctx context.Context, numeroVoo string) (*entity.Flight, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, f := range r.flights {
		if f.Key() == numeroVoo {
			f := f
			return &f, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *fakeFlightRepo) Upsert(ctx context.Context, flight *entity.Flight) error {
	r.flights = append(r.flights, *flight)
	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*entity.User
	nextID uint
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user: %w", entity.ErrDuplicate)
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return entity.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
	checks   int
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	s.ID = uint(len(r.sessions) + 1)
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *fakeSessionRepo) IsActive(ctx context.Context, userID uint, jti string) (bool, error) {
	r.checks++
	for _, s := range r.sessions {
		if s.UsuarioID == userID && s.JTI == jti {
			return s.Ativa, nil
		}
	}
	return false, nil
}

func (r *fakeSessionRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.Session, error) {
	var out []*entity.Session
	for i := len(r.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if r.sessions[i].UsuarioID == userID {
			out = append(out, r.sessions[i])
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Revoke(ctx context.Context, userID, sessionID uint) (string, error) {
	for _, s := range r.sessions {
		if s.ID == sessionID && s.UsuarioID == userID {
			s.Ativa = false
			return s.JTI, nil
		}
	}
	return "", entity.ErrNotFound
}

type fakeSecurityRepo struct {
	settings map[uint]bool
}

func (r *fakeSecurityRepo) Get(ctx context.Context, userID uint) (*entity.SecuritySettings, error) {
	enabled, ok := r.settings[userID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &entity.SecuritySettings{UsuarioID: userID, TwoFactorEnabled: enabled}, nil
}

func (r *fakeSecurityRepo) SetTwoFactor(ctx context.Context, userID uint, enabled bool) error {
	if r.settings == nil {
		r.settings = make(map[uint]bool)
	}
	r.settings[userID] = enabled
	return nil
}

type fakeLGPDRepo struct {
	requests []*entity.LGPDRequest
}

func (r *fakeLGPDRepo) Create(ctx context.Context, req *entity.LGPDRequest) error {
	req.ID = uint(len(r.requests) + 1)
	r.requests = append(r.requests, req)
	return nil
}

type fakeAccessLogRepo struct {
	mu   sync.Mutex
	logs []*entity.AccessLog
	err  error
}

func (r *fakeAccessLogRepo) Record(ctx context.Context, log *entity.AccessLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.logs = append(r.logs, log)
	return nil
}

type fakeChatLogRepo struct {
	logs []*entity.ChatLog
	err  error
}

func (r *fakeChatLogRepo) Save(ctx context.Context, log *entity.ChatLog) error {
	if r.err != nil {
		return r.err
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeChatLogRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.ChatLog, error) {
	return r.logs, nil
}

type fakeResponder struct {
	reply *entity.LLMReply
	err   error
	calls []repository.LLMRequest
}

func (r *fakeResponder) Reply(ctx context.Context, req repository.LLMRequest) (*entity.LLMReply, error) {
	r.calls = append(r.calls, req)
	return r.reply, r.err
}

func (r *fakeResponder) Provider() string { return "fake" }

type fakeTokens struct {
	n int
}

func (t *fakeTokens) Issue(userID uint, perfil string) (string, string, error) {
	t.n++
	if userID == 0 {
		return "", "", errors.New("no user")
	}
	return fmt.Sprintf("token-%d", t.n), fmt.Sprintf("jti-%d", t.n), nil
}
