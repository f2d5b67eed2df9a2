package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linkwork-app/linkwork_be/internal/models"
	"github.com/linkwork-app/linkwork_be/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// SignupInput mirrors a user record minus the generated id.
type SignupInput struct {
	Email    string
	Password string
	Role     models.Role
	Name     string
	Bio      string
	Skills   []string
}

// AuthService validates credentials against the data store and owns the
// session slot. The initial session is whatever Restore finds at startup.
type AuthService struct {
	store    *store.Store
	sessions *store.SessionStore
	log      zerolog.Logger

	mu      sync.RWMutex
	current *models.User
}

func NewAuthService(st *store.Store, sessions *store.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		store:    st,
		sessions: sessions,
		log:      log,
		current:  sessions.Restore(),
	}
}

// Current returns a copy of the authenticated user, or nil when anonymous.
func (s *AuthService) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// UserByID resolves a stored user record, used by /me style lookups.
func (s *AuthService) UserByID(id string) (*models.User, error) {
	for _, u := range s.store.Users() {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

// Login matches email and password exactly (case-sensitive, plaintext)
// against stored users. The demo credentials work only because they exist as
// seeded records; there is no separate bypass list. A failed login leaves
// the session untouched.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	for _, u := range s.store.Users() {
		if u.Email == email && u.Password == password {
			if err := s.setSession(&u); err != nil {
				return nil, err
			}
			s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("login")
			out := u
			return &out, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Signup creates a user record and logs it in. This is the only operation
// that mutates the user collection after seeding.
func (s *AuthService) Signup(in SignupInput) (*models.User, error) {
	users := s.store.Users()
	for _, u := range users {
		if u.Email == in.Email {
			return nil, ErrEmailExists
		}
	}

	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	u := models.User{
		ID:       uuid.NewString(),
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
		Name:     in.Name,
		Bio:      in.Bio,
		Skills:   skills,
	}

	if err := s.store.Save(store.Update{Users: append(users, u)}); err != nil {
		return nil, err
	}
	if err := s.setSession(&u); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("signup")

	out := u
	return &out, nil
}

// Logout clears the session unconditionally. Idempotent, never fails; a
// broken session slot is only worth a warning.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.sessions.Set(nil); err != nil {
		s.log.Warn().Err(err).Msg("clearing session slot failed")
	}
}

func (s *AuthService) setSession(u *models.User) error {
	if err := s.sessions.Set(u); err != nil {
		return err
	}
	s.mu.Lock()
	snapshot := *u
	s.current = &snapshot
	s.mu.Unlock()
	return nil
}
