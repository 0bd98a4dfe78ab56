package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/handlers"
	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	sessions map[string]bool
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{sessions: make(map[string]bool)}
}

func (s *stubAuthService) Login(username, password string) (*models.AdminUser, string, error) {
	if username != "admin" || password != "geheim123" {
		return nil, "", services.ErrInvalidCredentials
	}
	sessionID := "admin_1_1"
	s.sessions[sessionID] = true
	return &models.AdminUser{ID: 1, Username: "admin", Role: "admin"}, sessionID, nil
}

func (s *stubAuthService) Logout(sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *stubAuthService) IsAdmin(sessionID string) bool {
	return s.sessions[sessionID]
}

func (s *stubAuthService) CreateAdmin(username, password string) error {
	return nil
}

type stubMailer struct{ testResult bool }

func (m *stubMailer) SendRamenReceived(order *models.RamenOrder)                            {}
func (m *stubMailer) SendRamenAdminNotification(order *models.RamenOrder, totalBookings int) {}
func (m *stubMailer) SendRamenInvitation(emails []string, day time.Time)                    {}
func (m *stubMailer) SendRamenStatusUpdate(order *models.RamenOrder)                        {}
func (m *stubMailer) SendOrderConfirmation(order *models.Order, productName string)         {}
func (m *stubMailer) SendOrderAdminNotification(order *models.Order, productName string)    {}
func (m *stubMailer) SendOrderStatusUpdate(order *models.Order, productName string)         {}
func (m *stubMailer) SendContactNotification(message *models.ContactMessage)                {}
func (m *stubMailer) SendTestEmail() bool                                                   { return m.testResult }

func adminRouter(auth services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewAdminHandler(auth, &stubMailer{testResult: true}, 3600)

	router := gin.New()
	router.POST("/api/admin/login", handler.Login)
	router.POST("/api/admin/logout", handler.Logout)
	router.GET("/api/admin/status", handler.Status)
	router.GET("/api/orders", handler.RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestLoginHandler(t *testing.T) {
	auth := newStubAuthService()
	router := adminRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"username":"admin","password":"geheim123"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "admin_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	router := adminRouter(newStubAuthService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"username":"admin","password":"fout"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	auth := newStubAuthService()
	router := adminRouter(auth)

	// No cookie: 401.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/orders", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// With a valid session the guard lets the request through.
	_, sessionID, err := auth.Login("admin", "geheim123")
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: sessionID})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatusHandler(t *testing.T) {
	auth := newStubAuthService()
	router := adminRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/status", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isAdmin":false`)

	_, sessionID, err := auth.Login("admin", "geheim123")
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/admin/status", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: sessionID})
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"isAdmin":true`)
}
