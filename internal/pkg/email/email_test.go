package email

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func sampleInquiry() *models.Inquiry {
	return &models.Inquiry{
		ID:        primitive.NewObjectID(),
		Name:      "Rahul Sharma",
		Phone:     "9876543210",
		Class:     "10th",
		Subject:   "Physics",
		Message:   "Looking for <b>board</b> prep",
		CreatedAt: time.Now(),
	}
}

func TestNotifyNewInquiry(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEmailServiceWithSender(SMTPConfig{
		FromName:    "Organic Classes",
		FromEmail:   "noreply@organicclasses.com",
		NotifyEmail: "office@organicclasses.com",
	}, sender, zerolog.Nop())

	require.NoError(t, svc.NotifyNewInquiry(sampleInquiry()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"office@organicclasses.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"New inquiry: Rahul Sharma (10th, Physics)"}, msg.GetHeader("Subject"))
}

func TestNotifyNewInquiry_NotConfigured(t *testing.T) {
	sender := &fakeSender{}
	svc := NewEmailServiceWithSender(SMTPConfig{}, sender, zerolog.Nop())

	assert.NoError(t, svc.NotifyNewInquiry(sampleInquiry()))
	assert.Empty(t, sender.sent)

	svc = NewEmailServiceWithSender(SMTPConfig{NotifyEmail: "office@organicclasses.com"}, nil, zerolog.Nop())
	assert.NoError(t, svc.NotifyNewInquiry(sampleInquiry()))
}

func TestSendWelcomeEmail_SendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	svc := NewEmailServiceWithSender(SMTPConfig{FromEmail: "noreply@organicclasses.com"}, sender, zerolog.Nop())

	err := svc.SendWelcomeEmail("priya@organicclasses.com", "Dr. Priya Singh")
	assert.ErrorContains(t, err, "connection refused")
}
