package services_test

import (
	"testing"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeContactRepo struct {
	messages map[uint]*models.ContactMessage
	nextID   uint
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: make(map[uint]*models.ContactMessage), nextID: 1}
}

func (r *fakeContactRepo) Create(message *models.ContactMessage) error {
	message.ID = r.nextID
	r.nextID++
	copied := *message
	r.messages[message.ID] = &copied
	return nil
}

func (r *fakeContactRepo) GetByID(id uint) (*models.ContactMessage, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *message
	return &copied, nil
}

func (r *fakeContactRepo) GetAll() ([]models.ContactMessage, error) {
	var result []models.ContactMessage
	for id := uint(1); id < r.nextID; id++ {
		if message, ok := r.messages[id]; ok {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (r *fakeContactRepo) UpdateStatus(id uint, status string) error {
	message, ok := r.messages[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	message.Status = status
	return nil
}

func contactMessage() *models.ContactMessage {
	return &models.ContactMessage{
		FirstName: "Jan",
		LastName:  "Jansen",
		Email:     "jan@example.com",
		Subject:   "Vraag over siroop",
		Message:   "Is de vlierbloesem siroop nog op voorraad?",
	}
}

func TestCreateMessage(t *testing.T) {
	repo := newFakeContactRepo()
	mailer := &recordingMailer{}
	svc := services.NewContactService(repo, mailer)

	message := contactMessage()
	err := svc.CreateMessage(message)
	assert.NoError(t, err)
	assert.Equal(t, string(models.MessageNew), message.Status)
	assert.Equal(t, 1, mailer.adminNotices)
}

func TestCreateMessage_InvalidEmail(t *testing.T) {
	repo := newFakeContactRepo()
	mailer := &recordingMailer{}
	svc := services.NewContactService(repo, mailer)

	message := contactMessage()
	message.Email = "jan@"

	err := svc.CreateMessage(message)
	assert.ErrorIs(t, err, services.ErrInvalidEmail)
	assert.Empty(t, repo.messages, "rejected submissions are never persisted")
	assert.Zero(t, mailer.adminNotices)
}

func TestContactUpdateStatus(t *testing.T) {
	repo := newFakeContactRepo()
	svc := services.NewContactService(repo, &recordingMailer{})

	assert.NoError(t, svc.CreateMessage(contactMessage()))

	message, err := svc.UpdateStatus(1, string(models.MessageRead))
	assert.NoError(t, err)
	assert.Equal(t, string(models.MessageRead), message.Status)

	_, err = svc.UpdateStatus(1, "archived")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = svc.UpdateStatus(5, string(models.MessageReplied))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
