package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendEscalationAlert(toEmail, conversationID, agentType string, confidence float64, message, response string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendEscalationAlert(toEmail, conversationID, agentType string, confidence float64, message, response string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Escalation required: conversation %s", conversationID))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Conversation flagged for human follow-up</h2>
			<p><b>Conversation:</b> %s</p>
			<p><b>Last agent:</b> %s (confidence %.2f)</p>
			<p><b>Customer message:</b></p>
			<blockquote style="border-left: 3px solid #ccc; padding-left: 10px;">%s</blockquote>
			<p><b>Assistant reply:</b></p>
			<blockquote style="border-left: 3px solid #ccc; padding-left: 10px;">%s</blockquote>
			<p>Please pick this conversation up from the support console.</p>
		</div>
	`, conversationID, agentType, confidence, message, response)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation alert for %s: %v\n", conversationID, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation alert sent for %s\n", conversationID)
	return nil
}
