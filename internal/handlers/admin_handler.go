package handlers

import (
	"errors"
	"net/http"

	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "admin_session"

type AdminHandler struct {
	authService   services.AuthService
	mailerService services.MailerService
	sessionMaxAge int
}

func NewAdminHandler(authService services.AuthService, mailerService services.MailerService, sessionMaxAge int) *AdminHandler {
	return &AdminHandler{
		authService:   authService,
		mailerService: mailerService,
		sessionMaxAge: sessionMaxAge,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	admin, sessionID, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login error"})
		return
	}

	c.SetCookie(sessionCookie, sessionID, h.sessionMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   gin.H{"id": admin.ID, "username": admin.Username, "role": admin.Role},
	})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookie)
	if err == nil && sessionID != "" {
		if err := h.authService.Logout(sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout error"})
			return
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AdminHandler) Status(c *gin.Context) {
	sessionID, _ := c.Cookie(sessionCookie)
	c.JSON(http.StatusOK, gin.H{"isAdmin": h.authService.IsAdmin(sessionID)})
}

// SendTestEmail lets the admin verify the mail relay end to end.
func (h *AdminHandler) SendTestEmail(c *gin.Context) {
	if h.mailerService.SendTestEmail() {
		c.JSON(http.StatusOK, gin.H{"message": "Test email verzonden"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Test email kon niet worden verzonden"})
}

// RequireAdmin guards admin-only routes with the session cookie.
func (h *AdminHandler) RequireAdmin(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookie)
	if err != nil || !h.authService.IsAdmin(sessionID) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Admin authentication required"})
		return
	}
	c.Next()
}
