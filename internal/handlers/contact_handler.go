package handlers

import (
	"errors"
	"net/http"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type contactRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message data", "errors": err.Error()})
		return
	}

	message := &models.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	}

	if err := h.contactService.CreateMessage(message); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message data", "errors": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *ContactHandler) GetMessages(c *gin.Context) {
	messages, err := h.contactService.GetAllMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message ID or status"})
		return
	}

	message, err := h.contactService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message ID or status"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating message status"})
		}
		return
	}
	c.JSON(http.StatusOK, message)
}
