package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/redis"
	"github.com/DKessler95/limonade-webshop/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionStore keeps admin sessions server-side; the Redis client
// satisfies it.
type SessionStore interface {
	SetSession(sessionID string, data *redis.SessionData, ttl time.Duration) error
	GetSession(sessionID string) (*redis.SessionData, error)
	DeleteSession(sessionID string) error
}

type AuthService interface {
	Login(username, password string) (*models.AdminUser, string, error)
	Logout(sessionID string) error
	IsAdmin(sessionID string) bool
	CreateAdmin(username, password string) error
}

type authService struct {
	adminRepo  repository.AdminRepository
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewAuthService(adminRepo repository.AdminRepository, sessions SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{adminRepo: adminRepo, sessions: sessions, sessionTTL: sessionTTL}
}

// Login verifies the credentials against the stored bcrypt hash and
// opens a server-side session. The returned session id goes into the
// admin cookie.
func (s *authService) Login(username, password string) (*models.AdminUser, string, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sessionID := fmt.Sprintf("admin_%d_%d", admin.ID, time.Now().UnixNano())
	sessionData := &redis.SessionData{
		AdminID:   admin.ID,
		Username:  admin.Username,
		Role:      admin.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(sessionID, sessionData, s.sessionTTL); err != nil {
		return nil, "", err
	}

	return admin, sessionID, nil
}

func (s *authService) Logout(sessionID string) error {
	return s.sessions.DeleteSession(sessionID)
}

func (s *authService) IsAdmin(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	_, err := s.sessions.GetSession(sessionID)
	return err == nil
}

// CreateAdmin stores a new dashboard user with a bcrypt-hashed password.
func (s *authService) CreateAdmin(username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username: username,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	return s.adminRepo.Create(admin)
}
