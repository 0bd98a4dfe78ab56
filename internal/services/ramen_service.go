package services

import (
	"errors"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/repository"
)

var (
	ErrDateFullyBooked = errors.New("date fully booked")
	ErrNotFriday       = errors.New("ramen evenings run on Fridays only")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMissingField    = errors.New("missing required field")
)

type SubmitRamenRequest struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PreferredDate time.Time
	Notes         string
}

// RamenBookingResult is the outcome of a reservation submission.
type RamenBookingResult struct {
	Order         *models.RamenOrder `json:"ramenOrder"`
	TotalBookings int                `json:"totalBookings"`
	IsConfirmed   bool               `json:"isConfirmed"`
	Message       string             `json:"message"`
}

type RamenAvailability struct {
	Available bool `json:"isAvailable"`
	Spots     int  `json:"available"`
	Total     int  `json:"total"`
}

// RamenService is the booking ledger: per-date capacity accounting and
// the threshold-triggered batch confirmation.
type RamenService interface {
	SubmitReservation(req SubmitRamenRequest) (*RamenBookingResult, error)
	GetAllOrders() ([]models.RamenOrder, error)
	GetOrdersByDate(day time.Time) ([]models.RamenOrder, error)
	ConfirmAllForDate(day time.Time) ([]models.RamenOrder, error)
	UpdateStatus(id uint, status string) (*models.RamenOrder, error)
	SendConfirmation(id uint) (*models.RamenOrder, error)
	Delete(id uint) error
	Availability(day time.Time) (*RamenAvailability, error)
}

type ramenService struct {
	ramenRepo repository.RamenOrderRepository
	mailer    MailerService
	capacity  int
	threshold int

	// Serializes the check-then-act submit path; gin handles requests
	// concurrently, so two same-date submissions could otherwise both
	// pass the capacity check.
	mu sync.Mutex
}

func NewRamenService(ramenRepo repository.RamenOrderRepository, mailer MailerService, capacity, threshold int) RamenService {
	return &ramenService{ramenRepo: ramenRepo, mailer: mailer, capacity: capacity, threshold: threshold}
}

func (s *ramenService) SubmitReservation(req SubmitRamenRequest) (*RamenBookingResult, error) {
	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customerName", ErrMissingField)
	}
	if req.CustomerPhone == "" {
		return nil, fmt.Errorf("%w: customerPhone", ErrMissingField)
	}
	if !validEmail(req.CustomerEmail) {
		return nil, ErrInvalidEmail
	}
	if req.PreferredDate.IsZero() {
		return nil, fmt.Errorf("%w: preferredDate", ErrMissingField)
	}

	day := models.DayStart(req.PreferredDate)
	if !models.IsFriday(day) {
		return nil, ErrNotFriday
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.ramenRepo.GetByDate(day)
	if err != nil {
		return nil, err
	}
	if countActive(existing) >= s.capacity {
		return nil, ErrDateFullyBooked
	}

	order := &models.RamenOrder{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PreferredDate: day,
		Servings:      1,
		Status:        string(models.RamenPending),
		Notes:         req.Notes,
	}
	if err := s.ramenRepo.Create(order); err != nil {
		return nil, err
	}

	updated, err := s.ramenRepo.GetByDate(day)
	if err != nil {
		return nil, err
	}
	total := countActive(updated)

	result := &RamenBookingResult{Order: order, TotalBookings: total}
	if total >= s.threshold {
		confirmed, err := s.ramenRepo.ConfirmAllForDate(day)
		if err != nil {
			return nil, err
		}
		for _, c := range confirmed {
			s.mailer.SendRamenInvitation([]string{c.CustomerEmail}, day)
		}
		order.Status = string(models.RamenConfirmed)
		result.IsConfirmed = true
		result.Message = "Gefeliciteerd! Jullie groep is compleet en de ramen-avond is bevestigd!"
	} else {
		result.Message = fmt.Sprintf("Bedankt voor je boeking! Nog %d personen nodig voor deze datum.", s.threshold-total)
	}

	// Acknowledgment mails go out regardless of confirmation outcome.
	s.mailer.SendRamenReceived(order)
	s.mailer.SendRamenAdminNotification(order, total)

	return result, nil
}

func (s *ramenService) GetAllOrders() ([]models.RamenOrder, error) {
	return s.ramenRepo.GetAll()
}

func (s *ramenService) GetOrdersByDate(day time.Time) ([]models.RamenOrder, error) {
	return s.ramenRepo.GetByDate(models.DayStart(day))
}

// ConfirmAllForDate transitions every pending reservation on the day to
// confirmed and mails each affected customer. Idempotent: with nothing
// pending it returns an empty list.
func (s *ramenService) ConfirmAllForDate(day time.Time) ([]models.RamenOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirmed, err := s.ramenRepo.ConfirmAllForDate(models.DayStart(day))
	if err != nil {
		return nil, err
	}
	for _, order := range confirmed {
		s.mailer.SendRamenInvitation([]string{order.CustomerEmail}, models.DayStart(day))
	}
	return confirmed, nil
}

// UpdateStatus sets a single reservation's status and mails that
// customer only. Transitions are unrestricted among the known statuses;
// the dashboard relies on being able to undo a cancellation.
func (s *ramenService) UpdateStatus(id uint, status string) (*models.RamenOrder, error) {
	if !models.ValidRamenStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.ramenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.ramenRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.mailer.SendRamenStatusUpdate(order)
	return order, nil
}

// SendConfirmation re-sends the invitation mail to one customer.
func (s *ramenService) SendConfirmation(id uint) (*models.RamenOrder, error) {
	order, err := s.ramenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.mailer.SendRamenInvitation([]string{order.CustomerEmail}, order.PreferredDate)
	return order, nil
}

func (s *ramenService) Delete(id uint) error {
	if _, err := s.ramenRepo.GetByID(id); err != nil {
		return err
	}
	return s.ramenRepo.Delete(id)
}

func (s *ramenService) Availability(day time.Time) (*RamenAvailability, error) {
	orders, err := s.ramenRepo.GetByDate(models.DayStart(day))
	if err != nil {
		return nil, err
	}

	spots := s.capacity - countActive(orders)
	if spots < 0 {
		spots = 0
	}
	return &RamenAvailability{
		Available: spots > 0,
		Spots:     spots,
		Total:     s.capacity,
	}, nil
}

// countActive counts reservations that hold a spot: cancelled ones
// free their place.
func countActive(orders []models.RamenOrder) int {
	n := 0
	for _, order := range orders {
		if order.Status != string(models.RamenCancelled) {
			n++
		}
	}
	return n
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
