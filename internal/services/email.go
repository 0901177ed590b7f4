package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/models"
)

// EmailService sends studio notification emails over SMTP. When disabled
// it only logs what it would have sent, which is the development default.
type EmailService struct {
	cfg    config.EmailConfig
	studio config.StudioConfig
	log    *logger.Logger
}

func NewEmailService(cfg config.EmailConfig, studio config.StudioConfig, log *logger.Logger) *EmailService {
	return &EmailService{cfg: cfg, studio: studio, log: log}
}

func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}

// SendBookingConfirmation emails the customer that the studio received
// their booking request.
func (s *EmailService) SendBookingConfirmation(booking *models.Booking) error {
	subject := fmt.Sprintf("Booking Confirmation - %s", s.studio.Name)

	details := fmt.Sprintf("<p><strong>Service:</strong> %s</p>", booking.ServiceType)
	if booking.EventDate != nil {
		details += fmt.Sprintf("<p><strong>Date:</strong> %s</p>", booking.EventDate.Format("January 2, 2006"))
	}
	if booking.Location != "" {
		details += fmt.Sprintf("<p><strong>Location:</strong> %s</p>", booking.Location)
	}
	details += fmt.Sprintf("<p><strong>Budget:</strong> KSh %s</p>", formatAmount(booking.Budget))

	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
  <div style="text-align: center; margin-bottom: 20px;">
    <h1 style="color: #000; margin-bottom: 10px;">%s</h1>
    <p style="color: #D4AF37; font-style: italic;">Premium Photography &amp; Videography</p>
  </div>
  <h2 style="color: #000;">Thank You for Your Booking!</h2>
  <p>Dear %s %s,</p>
  <p>We have received your booking request for %s services. Thank you for choosing %s!</p>
  <div style="background-color: #f5f5f5; padding: 15px; border-left: 4px solid #D4AF37; margin: 20px 0;">
    <h3 style="margin-top: 0;">Booking Details:</h3>
    %s
  </div>
  <p>Our team will review your request and reach out to you within 24 hours to discuss the details and confirm your booking.</p>
  <p>If you have any questions or need to make changes to your booking, please contact us at:</p>
  <p>%s<br>%s</p>
</div>`,
		s.studio.Name,
		booking.FirstName, booking.LastName,
		booking.ServiceType, s.studio.Name,
		details,
		s.studio.Phone, s.studio.AdminEmail)

	text := fmt.Sprintf(`Dear %s %s,

We have received your booking request for %s services. Thank you for choosing %s!

Budget: KSh %s

Our team will reach out within 24 hours to confirm your booking.

%s
%s`,
		booking.FirstName, booking.LastName,
		booking.ServiceType, s.studio.Name,
		formatAmount(booking.Budget),
		s.studio.Phone, s.studio.AdminEmail)

	return s.send(booking.Email, subject, html, text)
}

// SendBookingAlert emails the studio operator about a new booking request.
func (s *EmailService) SendBookingAlert(booking *models.Booking) error {
	subject := fmt.Sprintf("New Booking Request: %s - %s %s",
		booking.ServiceType, booking.FirstName, booking.LastName)

	details := fmt.Sprintf(`<p><strong>Name:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<h3>Booking Details:</h3>
<p><strong>Service:</strong> %s</p>`,
		booking.FirstName, booking.LastName,
		booking.Email, booking.Phone, booking.ServiceType)
	if booking.EventDate != nil {
		details += fmt.Sprintf("<p><strong>Date:</strong> %s</p>", booking.EventDate.Format("January 2, 2006"))
	}
	if booking.Location != "" {
		details += fmt.Sprintf("<p><strong>Location:</strong> %s</p>", booking.Location)
	}
	details += fmt.Sprintf("<p><strong>Budget:</strong> KSh %s</p>", formatAmount(booking.Budget))
	if booking.Message != "" {
		details += fmt.Sprintf("<h3>Additional Message:</h3><p>%s</p>", booking.Message)
	}

	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
  <div style="text-align: center; margin-bottom: 20px;">
    <h1 style="color: #000; margin-bottom: 10px;">%s</h1>
    <p style="color: #D4AF37; font-style: italic;">New Booking Alert</p>
  </div>
  <h2 style="color: #000;">New Booking Request</h2>
  <p>A new booking request has been submitted with the following details:</p>
  <div style="background-color: #f5f5f5; padding: 15px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Customer Information:</h3>
    %s
  </div>
  <p><a href="%s/admin/bookings" style="background-color: #D4AF37; color: #000; padding: 10px 15px; text-decoration: none; border-radius: 4px; display: inline-block;">View in Dashboard</a></p>
  <p>Please respond to this booking request within 24 hours.</p>
</div>`,
		s.studio.Name, details, s.studio.BaseURL)

	text := fmt.Sprintf(`New booking request from %s %s (%s, %s).
Service: %s
Budget: KSh %s

%s/admin/bookings`,
		booking.FirstName, booking.LastName, booking.Email, booking.Phone,
		booking.ServiceType, formatAmount(booking.Budget), s.studio.BaseURL)

	return s.send(s.studio.AdminEmail, subject, html, text)
}

// SendContactAlert emails the studio operator about a new contact message.
func (s *EmailService) SendContactAlert(msg *models.ContactMessage) error {
	subject := fmt.Sprintf("Contact Form: %s", msg.Subject)

	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
  <div style="text-align: center; margin-bottom: 20px;">
    <h1 style="color: #000; margin-bottom: 10px;">%s</h1>
    <p style="color: #D4AF37; font-style: italic;">New Contact Form Submission</p>
  </div>
  <h2 style="color: #000;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 15px; margin: 20px 0;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Subject:</strong> %s</p>
    <h3>Message:</h3>
    <p>%s</p>
  </div>
</div>`,
		s.studio.Name, msg.Name, msg.Email, msg.Subject, msg.Message)

	text := fmt.Sprintf(`New contact form submission.

Name: %s
Email: %s
Subject: %s

%s`, msg.Name, msg.Email, msg.Subject, msg.Message)

	return s.send(s.studio.AdminEmail, subject, html, text)
}

func (s *EmailService) send(to, subject, htmlBody, textBody string) error {
	if !s.cfg.Enabled {
		s.log.LogEmail("SKIP", to, fmt.Sprintf("email disabled, would send %q", subject))
		return nil
	}
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	boundary := "----=_StudioPart_0001"
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(textBody + "\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(htmlBody + "\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	s.log.LogEmail("SENT", to, subject)
	return nil
}

// formatAmount renders a KSh amount with thousands separators, e.g. 35000
// becomes "35,000".
func formatAmount(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return strings.Join(parts, ",")
}
