package services

import (
	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/repository"
)

type ContactService interface {
	CreateMessage(message *models.ContactMessage) error
	GetAllMessages() ([]models.ContactMessage, error)
	UpdateStatus(id uint, status string) (*models.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	mailer      MailerService
}

func NewContactService(contactRepo repository.ContactRepository, mailer MailerService) ContactService {
	return &contactService{contactRepo: contactRepo, mailer: mailer}
}

// CreateMessage stores a contact-form submission and notifies the
// admin. An invalid email rejects the submission before anything is
// persisted.
func (s *contactService) CreateMessage(message *models.ContactMessage) error {
	if !validEmail(message.Email) {
		return ErrInvalidEmail
	}

	message.Status = string(models.MessageNew)
	if err := s.contactRepo.Create(message); err != nil {
		return err
	}

	s.mailer.SendContactNotification(message)
	return nil
}

func (s *contactService) GetAllMessages() ([]models.ContactMessage, error) {
	return s.contactRepo.GetAll()
}

func (s *contactService) UpdateStatus(id uint, status string) (*models.ContactMessage, error) {
	if !models.ValidMessageStatus(status) {
		return nil, ErrInvalidStatus
	}

	message, err := s.contactRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.contactRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	message.Status = status
	return message, nil
}
