package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const adminCookieName = "admin_session"

type adminSession struct {
	AdminID string
	Email   string
}

// AdminStore handles organizer credentials and cookie sessions. Admin data
// always lives in SQLite, regardless of which tournament backend is active.
type AdminStore interface {
	AdminByEmail(ctx context.Context, email string) (adminID, passwordHash string, err error)
	CreateSession(ctx context.Context, adminID string) (sessionID string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	SessionAdmin(ctx context.Context, sessionID string) (adminSession, error)
}

type AdminSQLStore struct {
	db *sql.DB
}

func NewAdminSQLStore(db *sql.DB) *AdminSQLStore {
	return &AdminSQLStore{db: db}
}

// EnsureAdmin seeds the organizer account on first boot. Idempotent: an
// existing account with the same email is left untouched.
func (s *AdminSQLStore) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return errors.New("admin email and password must not be empty")
	}

	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM admins WHERE email = ?`, email,
	).Scan(&count); err != nil {
		return fmt.Errorf("checking admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO admins (id, email, password_hash) VALUES (?, ?, ?)`,
		uuid.NewString(), email, string(hash),
	)
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}
	return nil
}

func (s *AdminSQLStore) AdminByEmail(ctx context.Context, email string) (string, string, error) {
	var adminID, passwordHash string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM admins WHERE email = ?`, email,
	).Scan(&adminID, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", err
	}
	return adminID, passwordHash, nil
}

func (s *AdminSQLStore) CreateSession(ctx context.Context, adminID string) (string, error) {
	sessionID := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admin_sessions (id, admin_id) VALUES (?, ?)`,
		sessionID, adminID,
	)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *AdminSQLStore) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM admin_sessions WHERE id = ?`, sessionID)
	return err
}

func (s *AdminSQLStore) SessionAdmin(ctx context.Context, sessionID string) (adminSession, error) {
	var sess adminSession
	err := s.db.QueryRowContext(ctx, `
		SELECT a.id, a.email
		FROM admin_sessions s
		JOIN admins a ON a.id = s.admin_id
		WHERE s.id = ?
	`, sessionID).Scan(&sess.AdminID, &sess.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return adminSession{}, ErrNotFound
	}
	return sess, err
}
