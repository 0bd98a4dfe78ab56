package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RamenHandler struct {
	ramenService services.RamenService
}

func NewRamenHandler(ramenService services.RamenService) *RamenHandler {
	return &RamenHandler{ramenService: ramenService}
}

type submitRamenRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	Notes         string `json:"notes"`
}

// SubmitReservation handles POST /api/orders/ramen: one person, one
// Friday.
func (h *RamenHandler) SubmitReservation(c *gin.Context) {
	var req submitRamenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "errors": err.Error()})
		return
	}

	preferredDate, err := parseDate(req.PreferredDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "errors": "preferredDate must be an ISO date"})
		return
	}

	result, err := h.ramenService.SubmitReservation(services.SubmitRamenRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PreferredDate: preferredDate,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDateFullyBooked):
			c.JSON(http.StatusBadRequest, gin.H{"message": "This date is fully booked. Please choose another Friday."})
		case errors.Is(err, services.ErrNotFriday):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Ramen evenings are on Fridays only. Please choose a Friday."})
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data", "errors": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create ramen order"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RamenHandler) GetOrders(c *gin.Context) {
	orders, err := h.ramenService.GetAllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch ramen orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetAvailability handles GET /api/ramen/availability/:date.
func (h *RamenHandler) GetAvailability(c *gin.Context) {
	day, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		return
	}

	availability, err := h.ramenService.Availability(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":        c.Param("date"),
		"available":   availability.Spots,
		"total":       availability.Total,
		"isAvailable": availability.Available,
	})
}

// ConfirmForDate handles POST /api/ramen-orders/confirm (admin): batch
// confirmation of a whole Friday.
func (h *RamenHandler) ConfirmForDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date is required"})
		return
	}

	day, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		return
	}

	confirmed, err := h.ramenService.ConfirmAllForDate(day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error confirming orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"confirmedOrders": confirmed,
		"emailsSent":      len(confirmed),
	})
}

func (h *RamenHandler) UpdateStatus(c *gin.Context) {
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

	order, err := h.ramenService.UpdateStatus(id, req.Status)
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

func (h *RamenHandler) DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	if err := h.ramenService.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ramen order deleted successfully", "id": id})
}

// SendConfirmation re-sends the invitation mail to one customer only.
func (h *RamenHandler) SendConfirmation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	order, err := h.ramenService.SendConfirmation(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending confirmation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Bevestigingsmail verzonden naar " + order.CustomerEmail,
		"email":   order.CustomerEmail,
	})
}

// parseDate accepts full ISO timestamps and bare calendar dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
