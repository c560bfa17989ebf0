package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
	SalonName    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := s.render(resetTemplate, templateData{
		Email:     toEmail,
		ActionURL: resetURL,
		SalonName: s.salonName(),
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Reset Your Password - %s", s.salonName())
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

// SendStaffInviteEmail sends a first-login setup email to a newly onboarded
// staff member. The token is a password setup token with a longer expiry than
// a regular reset.
func (s *EmailService) SendStaffInviteEmail(toEmail, staffName, token string) error {
	setupURL := fmt.Sprintf("%s/accept-invite?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := s.render(inviteTemplate, templateData{
		Email:     toEmail,
		Name:      staffName,
		ActionURL: setupURL,
		SalonName: s.salonName(),
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("You've been invited to %s", s.salonName())
	return s.sendEmail(toEmail, s.buildHTMLEmail(toEmail, subject, htmlContent))
}

func (s *EmailService) salonName() string {
	if s.config.SalonName != "" {
		return s.config.SalonName
	}
	return "PawSuite"
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

type templateData struct {
	Email     string
	Name      string
	ActionURL string
	SalonName string
}

func (s *EmailService) render(tmplText string, data templateData) (string, error) {
	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const resetTemplate = `
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Reset Your Password</title></head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
        <tr>
            <td style="background: linear-gradient(135deg, #38b2ac 0%, #2c7a7b 100%); padding: 32px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 26px;">{{.SalonName}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 32px;">
                <h2 style="color: #1a202c; margin: 0 0 16px 0;">Reset Your Password</h2>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    We received a request to reset the password for the account associated with <strong>{{.Email}}</strong>.
                    This link expires in <strong>1 hour</strong>.
                </p>
                <table role="presentation" style="margin: 24px auto;">
                    <tr>
                        <td style="background: #2c7a7b; border-radius: 8px;">
                            <a href="{{.ActionURL}}" style="display: inline-block; padding: 14px 28px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">Reset Password</a>
                        </td>
                    </tr>
                </table>
                <p style="color: #718096; font-size: 14px; line-height: 1.6;">
                    If you didn't request this, you can safely ignore this email.
                </p>
                <p style="color: #2c7a7b; font-size: 13px; word-break: break-all;">
                    <a href="{{.ActionURL}}" style="color: #2c7a7b;">{{.ActionURL}}</a>
                </p>
            </td>
        </tr>
        <tr>
            <td style="background-color: #f8fafc; padding: 20px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #a0aec0; font-size: 13px; margin: 0;">This email was sent by {{.SalonName}}</p>
            </td>
        </tr>
    </table>
</body>
</html>
`

const inviteTemplate = `
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>You're Invited</title></head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
        <tr>
            <td style="background: linear-gradient(135deg, #38b2ac 0%, #2c7a7b 100%); padding: 32px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 26px;">{{.SalonName}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 32px;">
                <h2 style="color: #1a202c; margin: 0 0 16px 0;">Welcome aboard{{if .Name}}, {{.Name}}{{end}}!</h2>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    A staff account has been created for you at <strong>{{.SalonName}}</strong>.
                    Set your password to start managing appointments, checkouts, and your schedule.
                </p>
                <table role="presentation" style="margin: 24px auto;">
                    <tr>
                        <td style="background: #2c7a7b; border-radius: 8px;">
                            <a href="{{.ActionURL}}" style="display: inline-block; padding: 14px 28px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">Set Your Password</a>
                        </td>
                    </tr>
                </table>
                <p style="color: #718096; font-size: 14px; line-height: 1.6;">
                    This invite link expires in <strong>72 hours</strong>. If it expires, ask your manager to resend the invite.
                </p>
                <p style="color: #2c7a7b; font-size: 13px; word-break: break-all;">
                    <a href="{{.ActionURL}}" style="color: #2c7a7b;">{{.ActionURL}}</a>
                </p>
            </td>
        </tr>
        <tr>
            <td style="background-color: #f8fafc; padding: 20px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #a0aec0; font-size: 13px; margin: 0;">This email was sent by {{.SalonName}}</p>
            </td>
        </tr>
    </table>
</body>
</html>
`
