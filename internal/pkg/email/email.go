package email

import (
	"fmt"
	"html"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
)

// EmailService defines the interface for email operations
type EmailService interface {
	NotifyNewInquiry(inquiry *models.Inquiry) error
	SendWelcomeEmail(toEmail, toName string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromEmail   string
	NotifyEmail string // institute inbox that receives new inquiries
}

// Sender delivers composed messages, satisfied by *gomail.Dialer
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	sender Sender
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	var sender Sender
	if config.Host != "" {
		sender = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	}
	return NewEmailServiceWithSender(config, sender, logger)
}

// NewEmailServiceWithSender creates an EmailService that delivers through
// sender. A nil sender only logs.
func NewEmailServiceWithSender(config SMTPConfig, sender Sender, logger zerolog.Logger) EmailService {
	if config.FromEmail == "" {
		config.FromEmail = config.Username
	}
	return &EmailServiceImpl{
		config: config,
		sender: sender,
		logger: logger,
	}
}

// NotifyNewInquiry tells the institute inbox about a freshly submitted inquiry
func (s *EmailServiceImpl) NotifyNewInquiry(inquiry *models.Inquiry) error {
	if s.sender == nil || s.config.NotifyEmail == "" {
		s.logger.Info().
			Str("inquiryID", inquiry.ID.Hex()).
			Str("name", inquiry.Name).
			Str("class", inquiry.Class).
			Str("subject", inquiry.Subject).
			Msg("SMTP not configured - new inquiry notification not sent")
		return nil
	}

	subject := fmt.Sprintf("New inquiry: %s (%s, %s)", inquiry.Name, inquiry.Class, inquiry.Subject)

	contact := html.EscapeString(inquiry.Phone)
	if inquiry.Email != "" {
		contact += " / " + html.EscapeString(inquiry.Email)
	}
	message := inquiry.Message
	if message == "" {
		message = "-"
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #2e7d32;">New inquiry received</h2>
				<p><strong>Name:</strong> %s</p>
				<p><strong>Contact:</strong> %s</p>
				<p><strong>Class:</strong> %s</p>
				<p><strong>Subject:</strong> %s</p>
				<p><strong>Message:</strong> %s</p>
				<p style="color: #777;">Submitted %s</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(inquiry.Name), contact,
		html.EscapeString(inquiry.Class), html.EscapeString(inquiry.Subject),
		html.EscapeString(message), inquiry.CreatedAt.Format(time.RFC1123))

	return s.sendHTMLEmail(s.config.NotifyEmail, subject, body)
}

// SendWelcomeEmail greets a newly registered staff member
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, toName string) error {
	if s.sender == nil {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("toName", toName).
			Msg("SMTP not configured - welcome email not sent")
		return nil
	}
	subject := "Welcome to Organic Classes"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #2e7d32;">Welcome to Organic Classes!</h2>
				<p>Hello %s,</p>
				<p>An administrator has created a staff account for you. You can now sign in to the dashboard with this email address.</p>
				<p>Best regards,<br>The Organic Classes Team</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(toName))

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		s.logger.Error().Err(err).Str("server", s.config.Host).Str("to", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug().Str("to", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
