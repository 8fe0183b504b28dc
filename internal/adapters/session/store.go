package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/SSebia/adsite-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	sessionFileMode = 0o600
	sessionDirMode  = 0o700
	tempFilePattern = ".session-*.toml.tmp"
)

// Store persists the login session (bearer token and user) as a TOML file.
// It is the client's only durable state; listing, category and comment
// collections live in memory for the session.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

type schema struct {
	Token string     `toml:"token"`
	User  userSchema `toml:"user"`
}

type userSchema struct {
	ID    int64    `toml:"id"`
	Name  string   `toml:"name"`
	Roles []string `toml:"roles"`
}

func (s *Store) Token(ctx context.Context) (string, error) {
	session, err := s.read(ctx)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

func (s *Store) CurrentUser(ctx context.Context) (domain.User, error) {
	session, err := s.read(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return session.User, nil
}

func (s *Store) Save(ctx context.Context, session ports.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := toml.Marshal(schema{
		Token: session.Token,
		User: userSchema{
			ID:    int64(session.User.ID),
			Name:  session.User.Name,
			Roles: session.User.Roles,
		},
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := tmp.Chmod(sessionFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("set session file mode: %w", err)
	}
	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *Store) read(ctx context.Context) (ports.Session, error) {
	if err := ctx.Err(); err != nil {
		return ports.Session{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ports.Session{}, domain.ErrNotLoggedIn
		}
		return ports.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var file schema
	if err := toml.Unmarshal(raw, &file); err != nil {
		return ports.Session{}, fmt.Errorf("decode session file: %w", err)
	}
	if file.Token == "" {
		return ports.Session{}, domain.ErrNotLoggedIn
	}

	return ports.Session{
		Token: file.Token,
		User: domain.User{
			ID:    domain.UserID(file.User.ID),
			Name:  file.User.Name,
			Roles: file.User.Roles,
		},
	}, nil
}
