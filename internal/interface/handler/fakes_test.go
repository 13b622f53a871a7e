package handler

import (
	"context"
	"sync"

	"skytrak-service/internal/domain/entity"
)

type memFlights struct {
	flights []entity.Flight
	err     error
}

func (r *memFlights) List(ctx context.Context) ([]entity.Flight, error) {
	return r.flights, r.err
}

func (r *memFlights) FindByNumber(ctx context.Context, numeroVoo string) (*entity.Flight, error) {
	for _, f := range r.flights {
		if f.Key() == numeroVoo {
			f := f
			return &f, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memFlights) Upsert(ctx context.Context, flight *entity.Flight) error {
	r.flights = append(r.flights, *flight)
	return nil
}

type memUsers struct {
	mu    sync.Mutex
	users []*entity.User
}

func (r *memUsers) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return entity.ErrDuplicate
		}
	}
	user.ID = uint(len(r.users) + 1)
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *memUsers) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memUsers) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *memUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memUsers) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return entity.ErrNotFound
}

type memSessions struct {
	mu       sync.Mutex
	sessions []*entity.Session
}

func (r *memSessions) Create(ctx context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uint(len(r.sessions) + 1)
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *memSessions) IsActive(ctx context.Context, userID uint, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.UsuarioID == userID && s.JTI == jti {
			return s.Ativa, nil
		}
	}
	return false, nil
}

func (r *memSessions) ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Session
	for i := len(r.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if r.sessions[i].UsuarioID == userID {
			out = append(out, r.sessions[i])
		}
	}
	return out, nil
}

func (r *memSessions) Revoke(ctx context.Context, userID, sessionID uint) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.ID == sessionID && s.UsuarioID == userID {
			s.Ativa = false
			return s.JTI, nil
		}
	}
	return "", entity.ErrNotFound
}

type memSecurity struct {
	enabled map[uint]bool
}

func (r *memSecurity) Get(ctx context.Context, userID uint) (*entity.SecuritySettings, error) {
	v, ok := r.enabled[userID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &entity.SecuritySettings{UsuarioID: userID, TwoFactorEnabled: v}, nil
}

func (r *memSecurity) SetTwoFactor(ctx context.Context, userID uint, enabled bool) error {
	r.enabled[userID] = enabled
	return nil
}

type memLGPD struct {
	requests []*entity.LGPDRequest
}

func (r *memLGPD) Create(ctx context.Context, req *entity.LGPDRequest) error {
	req.ID = uint(len(r.requests) + 1)
	r.requests = append(r.requests, req)
	return nil
}

type memAccessLog struct {
	mu   sync.Mutex
	logs []*entity.AccessLog
}

func (r *memAccessLog) Record(ctx context.Context, log *entity.AccessLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *memAccessLog) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.logs))
	for i, l := range r.logs {
		out[i] = l.Acao
	}
	return out
}

type memChatLogs struct {
	logs []*entity.ChatLog
}

func (r *memChatLogs) Save(ctx context.Context, log *entity.ChatLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *memChatLogs) ListByUser(ctx context.Context, userID uint, limit int) ([]*entity.ChatLog, error) {
	return r.logs, nil
}
