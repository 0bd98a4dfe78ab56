package handlers

import (
	"errors"
	"net/http"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	CustomerName   string          `json:"customerName" binding:"required"`
	CustomerEmail  string          `json:"customerEmail" binding:"required,email"`
	CustomerPhone  string          `json:"customerPhone"`
	ProductID      *uint           `json:"productId"`
	Quantity       int             `json:"quantity"`
	TotalAmount    decimal.Decimal `json:"totalAmount" binding:"required"`
	Notes          string          `json:"notes"`
	StreetAddress  string          `json:"streetAddress"`
	City           string          `json:"city"`
	PostalCode     string          `json:"postalCode"`
	Country        string          `json:"country"`
	DeliveryMethod string          `json:"deliveryMethod"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "errors": err.Error()})
		return
	}

	if req.DeliveryMethod == "" {
		req.DeliveryMethod = string(models.DeliveryPickup)
	}
	if req.Country == "" {
		req.Country = "Nederland"
	}

	order := &models.Order{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		TotalAmount:    req.TotalAmount,
		Notes:          req.Notes,
		StreetAddress:  req.StreetAddress,
		City:           req.City,
		PostalCode:     req.PostalCode,
		Country:        req.Country,
		DeliveryMethod: req.DeliveryMethod,
	}

	if err := h.orderService.CreateOrder(order); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "errors": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID or status"})
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID or status"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating order status"})
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully", "id": id})
}

func (h *OrderHandler) SendConfirmation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	order, err := h.orderService.SendConfirmation(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending confirmation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Bevestigingsmail verzonden naar " + order.CustomerEmail,
		"customerEmail": order.CustomerEmail,
		"status":        order.Status,
	})
}
