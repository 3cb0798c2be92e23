package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"time"
)

// sendWithSMTP delivers a rendered notification over plain SMTP, building a
// multipart/alternative body so clients can pick plaintext or HTML. A
// configured Sendgrid key always wins over SMTP.
func (s *Service) sendWithSMTP(data EmailData, htmlBody, textBody string) error {
	if s.config.Sendgrid.APIKey != "" {
		return s.sendWithSendgrid(data, htmlBody, textBody)
	}

	cfg := s.config.SMTP[string(s.provider)]

	boundary := fmt.Sprintf("ideahub_alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", data.FromName, data.From)
	fmt.Fprintf(&msg, "To: %s\r\n", data.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", data.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	// Plaintext part goes first so minimal clients stop there.
	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	msg.WriteString(base64.StdEncoding.EncodeToString([]byte(textBody)))
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "\r\n--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
	msg.WriteString(base64.StdEncoding.EncodeToString([]byte(htmlBody)))
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "\r\n--%s--", boundary)

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	if err := smtp.SendMail(addr, auth, data.From, []string{data.To}, msg.Bytes()); err != nil {
		return fmt.Errorf("sending via SMTP: %w", err)
	}

	return nil
}
