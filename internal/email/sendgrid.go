package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid delivers a rendered notification through the Sendgrid
// API. Sendgrid acknowledges queued mail with 202; any other status means
// the message was not accepted.
func (s *Service) sendWithSendgrid(data EmailData, htmlBody, textBody string) error {
	sender := mail.NewEmail(data.FromName, data.From)
	recipient := mail.NewEmail("", data.To)
	msg := mail.NewSingleEmail(sender, data.Subject, recipient, textBody, htmlBody)

	resp, err := s.sendgridClient.Send(msg)
	if err != nil {
		return fmt.Errorf("sending via Sendgrid: %w", err)
	}

	if resp.StatusCode != 202 {
		return fmt.Errorf("sendgrid refused message: status %d, body %s", resp.StatusCode, resp.Body)
	}

	return nil
}
