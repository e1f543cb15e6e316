package email

import (
	"fmt"
	"log"

	"github.com/directpavers/paverquote/pkg/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	apiKey     string
	fromEmail  string
	fromName   string
	ownerEmail string
}

// NewService creates a new email service. An empty API key switches the
// service to log-only mode, which is what local development uses.
func NewService(apiKey, fromEmail, fromName, ownerEmail string) *Service {
	return &Service{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		ownerEmail: ownerEmail,
	}
}

// SendLeadNotification tells the owner a new lead came in. Failures are
// returned for logging only; lead capture never depends on this email.
func (s *Service) SendLeadNotification(lead models.LeadResponse) error {
	subject := fmt.Sprintf("New paver lead: %s", lead.Name)
	plain := fmt.Sprintf(
		"New lead from the quote wizard.\n\nName: %s\nEmail: %s\nPhone: %s\nSource: %s\nCaptured: %s\n",
		lead.Name, lead.Email, lead.Phone, lead.Source, lead.CreatedAt,
	)
	html := fmt.Sprintf(
		"<p>New lead from the quote wizard.</p><ul><li><strong>Name:</strong> %s</li><li><strong>Email:</strong> %s</li><li><strong>Phone:</strong> %s</li><li><strong>Source:</strong> %s</li><li><strong>Captured:</strong> %s</li></ul>",
		lead.Name, lead.Email, lead.Phone, lead.Source, lead.CreatedAt,
	)

	if s.apiKey == "" || s.ownerEmail == "" {
		log.Printf("📧 [EMAIL] Lead notification (log-only): %s <%s>", lead.Name, lead.Email)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", s.ownerEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected lead notification: status %d", resp.StatusCode)
	}
	return nil
}
