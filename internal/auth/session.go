// Package auth is the mocked local session: there is no backend, a login
// only waits a fixed delay and records the user locally.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	RecordKey    = "user"
	MockUserID   = "123"
	GuestUserID  = "guest"
	GuestEmail   = "guest@focustask.app"
	DefaultDelay = time.Second
)

type User struct {
	ID    string `json:"uid"`
	Email string `json:"email"`
}

func (u User) IsGuest() bool { return u.ID == GuestUserID }

// Records is where the serialized user lives between runs.
type Records interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}

type Session struct {
	records Records
	delay   time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	user    *User
	loading bool
}

func NewSession(records Records, delay time.Duration, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{records: records, delay: delay, log: log, loading: true}
}

// Restore reads the stored user once at startup. A corrupt record is
// dropped and the session starts signed out.
func (s *Session) Restore(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, ok, err := s.records.Get(RecordKey)
	if err != nil {
		s.setUser(nil)
		return fmt.Errorf("read session: %w", err)
	}
	if !ok {
		s.setUser(nil)
		return nil
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn("dropping unreadable session record", zap.Error(err))
		s.setUser(nil)
		return s.records.Delete(RecordKey)
	}
	s.log.Info("session restored", zap.String("uid", u.ID))
	s.setUser(&u)
	return nil
}

func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	if err := ValidateLogin(Form{Email: email, Password: password}); err != nil {
		return User{}, err
	}
	if err := s.wait(ctx); err != nil {
		return User{}, err
	}
	return s.signIn(User{ID: MockUserID, Email: strings.TrimSpace(email)})
}

// Register validates the sign-up form and then signs in like Login.
func (s *Session) Register(ctx context.Context, f Form) (User, error) {
	if err := ValidateRegister(f); err != nil {
		return User{}, err
	}
	return s.Login(ctx, f.Email, f.Password)
}

func (s *Session) ContinueAsGuest(ctx context.Context) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	return s.signIn(User{ID: GuestUserID, Email: GuestEmail})
}

func (s *Session) Logout(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.records.Delete(RecordKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("signed out")
	s.setUser(nil)
	return nil
}

// User returns the signed-in user, if any.
func (s *Session) User() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Loading is true until Restore has run.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) signIn(u User) (User, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return User{}, err
	}
	if err := s.records.Put(RecordKey, string(data)); err != nil {
		return User{}, fmt.Errorf("save session: %w", err)
	}
	s.log.Info("signed in", zap.String("uid", u.ID), zap.Bool("guest", u.IsGuest()))
	s.setUser(&u)
	return u, nil
}

func (s *Session) setUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.loading = false
}

func (s *Session) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Message is the text shown for a failed auth call.
func Message(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
