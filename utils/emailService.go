package utils

import (
	"campapi/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || from == "defaultSecret" {
		return fmt.Errorf("email sender is not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Summer Camp <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 24px; border: 1px solid #eee; border-radius: 8px;">
		<h2 style="color: #2c3e50;">%s</h2>
		<div style="color: #444; line-height: 1.6;">%s</div>
		<p style="color: #999; font-size: 12px; margin-top: 32px;">Summer Camp — this is an automated message.</p>
	</div>`, title, bodyContent)
}

// SendEnrollmentConfirmation mails the payer after a successful payment
func SendEnrollmentConfirmation(to, classTitle string, amount float64) error {
	body := fmt.Sprintf(
		"<p>Your payment of <b>$%.2f</b> for <b>%s</b> has been received.</p><p>See you in class!</p>",
		amount, classTitle,
	)
	return SendEmail([]string{to}, "Enrollment confirmed: "+classTitle, getEmailTemplate("Enrollment Confirmed", body))
}

// SendPendingClassDigest mails the admin a list of classes awaiting review
func SendPendingClassDigest(to string, titles []string) error {
	items := ""
	for _, title := range titles {
		items += fmt.Sprintf("<li>%s</li>", title)
	}
	body := fmt.Sprintf(
		"<p>%d class(es) are waiting for review:</p><ul>%s</ul>",
		len(titles), items,
	)
	return SendEmail([]string{to}, "Classes pending review", getEmailTemplate("Pending Classes", body))
}
