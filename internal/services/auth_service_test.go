package services_test

import (
	"testing"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/redis"
	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAdminRepo struct {
	admins map[string]*models.AdminUser
	nextID uint
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.AdminUser), nextID: 1}
}

func (r *fakeAdminRepo) Create(admin *models.AdminUser) error {
	admin.ID = r.nextID
	r.nextID++
	copied := *admin
	r.admins[admin.Username] = &copied
	return nil
}

func (r *fakeAdminRepo) GetByUsername(username string) (*models.AdminUser, error) {
	admin, ok := r.admins[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *admin
	return &copied, nil
}

type fakeSessionStore struct {
	sessions map[string]*redis.SessionData
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*redis.SessionData)}
}

func (s *fakeSessionStore) SetSession(sessionID string, data *redis.SessionData, ttl time.Duration) error {
	s.sessions[sessionID] = data
	return nil
}

func (s *fakeSessionStore) GetSession(sessionID string) (*redis.SessionData, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, redis.ErrSessionNotFound
	}
	return data, nil
}

func (s *fakeSessionStore) DeleteSession(sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NoError(t, repo.Create(&models.AdminUser{Username: username, Password: string(hash), Role: "admin"}))
}

func TestLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	sessions := newFakeSessionStore()
	svc := services.NewAuthService(repo, sessions, time.Hour)

	seedAdmin(t, repo, "admin", "geheim123")

	admin, sessionID, err := svc.Login("admin", "geheim123")
	assert.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.NotEmpty(t, sessionID)
	assert.True(t, svc.IsAdmin(sessionID))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newFakeAdminRepo()
	sessions := newFakeSessionStore()
	svc := services.NewAuthService(repo, sessions, time.Hour)

	seedAdmin(t, repo, "admin", "geheim123")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong_password", username: "admin", password: "verkeerd"},
		{name: "unknown_user", username: "nobody", password: "geheim123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sessionID, err := svc.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, services.ErrInvalidCredentials)
			assert.Empty(t, sessionID)
			assert.Empty(t, sessions.sessions)
		})
	}
}

func TestLogout(t *testing.T) {
	repo := newFakeAdminRepo()
	sessions := newFakeSessionStore()
	svc := services.NewAuthService(repo, sessions, time.Hour)

	seedAdmin(t, repo, "admin", "geheim123")

	_, sessionID, err := svc.Login("admin", "geheim123")
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(sessionID))
	assert.False(t, svc.IsAdmin(sessionID))
	assert.False(t, svc.IsAdmin(""))
}

func TestCreateAdmin_HashesPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := services.NewAuthService(repo, newFakeSessionStore(), time.Hour)

	assert.NoError(t, svc.CreateAdmin("damian", "wachtwoord"))

	stored, err := repo.GetByUsername("damian")
	assert.NoError(t, err)
	assert.NotEqual(t, "wachtwoord", stored.Password, "passwords are never stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("wachtwoord")))
}
