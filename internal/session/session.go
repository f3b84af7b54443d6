package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
)

// State describes how far the cached identity can be trusted.
type State int

const (
	Anonymous State = iota
	Authenticated
	// Offline means the backend could not be reached and the cached identity
	// is used as is.
	Offline
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Offline:
		return "offline"
	}
	return "anonymous"
}

// Backend is the part of the user service a session needs.
type Backend interface {
	GetUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	AuthenticateUser(ctx context.Context, phone, password string) (*domain.User, error)
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// Session holds the current actor of a client process.
type Session struct {
	backend Backend
	store   Store
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.RWMutex
	identity *Identity
	state    State
}

func New(backend Backend, store Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{backend: backend, store: store, logger: logger, now: time.Now}
}

// Load restores the cached identity and revalidates it. A changed password or a
// user that no longer exists signs the session out. When the backend fails the
// cached identity is kept and the session goes Offline.
func (s *Session) Load(ctx context.Context) (State, error) {
	cached, err := s.store.Read()
	if err != nil {
		return Anonymous, err
	}
	if cached == nil {
		s.set(nil, Anonymous)
		return Anonymous, nil
	}

	fresh, err := s.backend.GetUserByPhone(ctx, cached.Phone)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		s.logger.Info("Cached user no longer exists, signing out", slog.String("user_id", cached.UserID))
		return Anonymous, s.Logout()
	case err != nil:
		s.logger.Warn("Backend unreachable, using cached identity",
			slog.String("user_id", cached.UserID),
			slog.String("error", err.Error()))
		s.set(cached, Offline)
		return Offline, nil
	}

	if fresh.UserID != cached.UserID || fresh.PasswordHash != cached.PasswordHash {
		s.logger.Info("Cached credentials are stale, signing out", slog.String("user_id", cached.UserID))
		return Anonymous, s.Logout()
	}

	if err := s.remember(fresh); err != nil {
		return Anonymous, err
	}
	return Authenticated, nil
}

// Login checks the credentials against the backend and caches the identity.
func (s *Session) Login(ctx context.Context, phone, password string) (*domain.User, error) {
	user, err := s.backend.AuthenticateUser(ctx, phone, password)
	if err != nil {
		return nil, err
	}
	if err := s.remember(user); err != nil {
		return nil, err
	}
	s.logger.Info("Signed in", slog.String("user_id", user.UserID))
	return user, nil
}

// Register creates an account and signs it in.
func (s *Session) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	user, err := s.backend.RegisterUser(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.remember(user); err != nil {
		return nil, err
	}
	s.logger.Info("Registered and signed in",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return user, nil
}

func (s *Session) Logout() error {
	s.set(nil, Anonymous)
	return s.store.Clear()
}

// Current returns the cached actor, or false when nobody is signed in.
func (s *Session) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domain.User{}, false
	}
	return s.identity.User(), true
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) remember(u *domain.User) error {
	id := identityFromUser(u, s.now())
	if err := s.store.Write(id); err != nil {
		return err
	}
	s.set(id, Authenticated)
	return nil
}

func (s *Session) set(id *Identity, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = id
	s.state = state
}
