package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/errx"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"
)

const (
	minPasswordLen   = 6
	sessionListLimit = 30
)

// TokenIssuer signs session tokens
type TokenIssuer interface {
	Issue(userID uint, perfil string) (token string, jti string, err error)
}

// RegisterInput is the sign-up payload
type RegisterInput struct {
	Nome      string
	Email     string
	Senha     string
	Perfil    string
	Companhia string
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token   string       `json:"token"`
	Usuario *entity.User `json:"usuario"`
}

// AuthService handles accounts, sessions and account security
type AuthService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	securityRepo repository.SecurityRepository
	lgpdRepo     repository.LGPDRepository
	tokens       TokenIssuer
	guard        *SessionGuard
	bcryptCost   int
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	securityRepo repository.SecurityRepository,
	lgpdRepo repository.LGPDRepository,
	tokens TokenIssuer,
	guard *SessionGuard,
	bcryptCost int,
	m *metrics.Metrics,
	logger logger.Logger,
) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		securityRepo: securityRepo,
		lgpdRepo:     lgpdRepo,
		tokens:       tokens,
		guard:        guard,
		bcryptCost:   bcryptCost,
		metrics:      m,
		logger:       logger,
	}
}

// Register creates an account. Perfil defaults to OPERADOR and CIA
// accounts must name their airline.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Companhia = strings.TrimSpace(in.Companhia)
	if in.Nome == "" || in.Email == "" || in.Senha == "" {
		return nil, errx.BadRequest("Nome, email e senha sao obrigatorios")
	}
	if in.Perfil == "" {
		in.Perfil = entity.ProfileOperator
	}
	if !entity.ValidProfile(in.Perfil) {
		return nil, errx.BadRequest("Perfil invalido")
	}
	if in.Perfil == entity.ProfileAirline && in.Companhia == "" {
		return nil, errx.BadRequest("Companhia e obrigatoria para perfil CIA")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), s.bcryptCost)
	if err != nil {
		return nil, errx.Internal(err, "Erro ao registrar usuario")
	}

	user := &entity.User{
		Nome:         in.Nome,
		Email:        in.Email,
		PasswordHash: string(hash),
		Perfil:       in.Perfil,
	}
	if in.Companhia != "" {
		user.Companhia = &in.Companhia
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, errx.Conflict("Email ja cadastrado")
		}
		return nil, errx.Internal(err, "Erro ao registrar usuario")
	}

	s.logger.Info("User registered", "userId", user.ID, "perfil", user.Perfil)
	return user, nil
}

// Login checks credentials, issues a token and opens a session.
func (s *AuthService) Login(ctx context.Context, email, senha, userAgent, ip string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || senha == "" {
		return nil, errx.BadRequest("Email e senha sao obrigatorios")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			s.metrics.LoginAttempts.WithLabelValues("rejected").Inc()
			return nil, errx.Unauthorized("Credenciais invalidas")
		}
		return nil, errx.Internal(err, "Erro ao fazer login")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(senha)) != nil {
		s.metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return nil, errx.Unauthorized("Credenciais invalidas")
	}

	token, jti, err := s.tokens.Issue(user.ID, user.Perfil)
	if err != nil {
		return nil, errx.Internal(err, "Erro ao fazer login")
	}

	session := &entity.Session{
		UsuarioID: user.ID,
		JTI:       jti,
		UserAgent: optional(truncate(userAgent, 255)),
		IP:        optional(ip),
		Ativa:     true,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, errx.Internal(err, "Erro ao fazer login")
	}

	s.metrics.LoginAttempts.WithLabelValues("accepted").Inc()
	s.logger.Info("User logged in", "userId", user.ID, "sessionId", session.ID)
	return &LoginResult{Token: token, Usuario: user}, nil
}

// Me returns the caller's profile.
func (s *AuthService) Me(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errx.NotFound("Usuario nao encontrado")
		}
		return nil, errx.Internal(err, "Erro ao buscar dados do usuario")
	}
	return user, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	if current == "" || next == "" {
		return errx.BadRequest("Senha atual e nova senha sao obrigatorias")
	}
	if len([]rune(next)) < minPasswordLen {
		return errx.BadRequest("A nova senha deve ter ao menos 6 caracteres")
	}

	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return errx.Unauthorized("Senha atual invalida")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return errx.Internal(err, "Erro ao alterar senha")
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return errx.Internal(err, "Erro ao alterar senha")
	}
	return nil
}

// TwoFactor reports whether 2FA is on; accounts without settings are off.
func (s *AuthService) TwoFactor(ctx context.Context, userID uint) (bool, error) {
	settings, err := s.securityRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}
		return false, errx.Internal(err, "Erro ao consultar 2FA")
	}
	return settings.TwoFactorEnabled, nil
}

// SetTwoFactor turns 2FA on or off.
func (s *AuthService) SetTwoFactor(ctx context.Context, userID uint, enabled bool) error {
	if err := s.securityRepo.SetTwoFactor(ctx, userID, enabled); err != nil {
		return errx.Internal(err, "Erro ao atualizar 2FA")
	}
	return nil
}

// Sessions lists the caller's most recent sessions.
func (s *AuthService) Sessions(ctx context.Context, userID uint) ([]*entity.Session, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID, sessionListLimit)
	if err != nil {
		return nil, errx.Internal(err, "Erro ao listar sessoes")
	}
	if sessions == nil {
		sessions = []*entity.Session{}
	}
	return sessions, nil
}

// RevokeSession closes one of the caller's sessions.
func (s *AuthService) RevokeSession(ctx context.Context, userID, sessionID uint) error {
	jti, err := s.sessionRepo.Revoke(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return errx.NotFound("Sessao nao encontrada")
		}
		return errx.Internal(err, "Erro ao encerrar sessao")
	}
	s.guard.Forget(userID, jti)
	s.logger.Info("Session revoked", "userId", userID, "sessionId", sessionID)
	return nil
}

// RequestLGPD opens a data-subject request.
func (s *AuthService) RequestLGPD(ctx context.Context, userID uint, tipo, detalhes string) (uint, error) {
	tipo = strings.ToUpper(strings.TrimSpace(tipo))
	if !entity.ValidLGPDType(tipo) {
		return 0, errx.BadRequest("Tipo invalido. Use EXPORTACAO ou EXCLUSAO")
	}

	req := &entity.LGPDRequest{
		UsuarioID: userID,
		Tipo:      tipo,
		Status:    entity.LGPDOpen,
		Detalhes:  optional(strings.TrimSpace(detalhes)),
	}
	if err := s.lgpdRepo.Create(ctx, req); err != nil {
		return 0, errx.Internal(err, "Erro ao registrar solicitacao LGPD")
	}
	return req.ID, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func truncate(v string, n int) string {
	r := []rune(v)
	if len(r) > n {
		return string(r[:n])
	}
	return v
}
