package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"stream-insights/report"

	gomail "gopkg.in/mail.v2"
)

// EmailNotifier sends the report digest over SMTP.
type EmailNotifier struct {
	smtpHost       string
	smtpPort       int
	senderEmail    string
	senderPass     string
	recipientEmail string
	htmlTemplate   *template.Template
}

// EmailConfig contains configuration for email notifications
type EmailConfig struct {
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	RecipientEmail string
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(config EmailConfig) (*EmailNotifier, error) {
	tmpl, err := template.New("digest").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Stream Insights - Catalog Report Digest</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; }
        h1 { color: #e50914; }
        h2 { color: #0071c5; margin-top: 30px; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        th { background-color: #f4f4f4; text-align: left; padding: 8px; }
        td { padding: 8px; border-bottom: 1px solid #ddd; }
        .narrative { background-color: #fff8e1; padding: 15px; border-left: 4px solid #e50914; }
        .count { font-weight: bold; color: #e50914; }
        .rows { font-size: 12px; color: #666; }
        .footer { font-size: 12px; color: #666; margin-top: 50px; text-align: center; }
        .source { font-style: italic; color: #666; }
    </style>
</head>
<body>
    <h1>Stream Insights - Catalog Report Digest</h1>
    <p>Reports computed on {{.Date}} over <span class="count">{{.RecordCount}}</span> catalog records.</p>

    {{if .Narrative}}
    <div class="narrative">
        <p>{{.Narrative}}</p>
    </div>
    {{end}}

    {{range .Reports}}
    <h2>{{.Title}}</h2>
    <table>
        <tr>
            {{range .Columns}}<th>{{.}}</th>{{end}}
        </tr>
        {{range .Rows}}
        <tr>
            {{range .}}<td>{{.}}</td>{{end}}
        </tr>
        {{end}}
    </table>
    <p class="rows">{{len .Rows}} row(s)</p>
    {{end}}

    <div class="source">
        <p>Source: {{.SourceURL}}</p>
    </div>

    <div class="footer">
        <p>This is an automated email from Stream Insights. Please do not reply.</p>
    </div>
</body>
</html>
`)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %v", err)
	}

	return &EmailNotifier{
		smtpHost:       config.SMTPHost,
		smtpPort:       config.SMTPPort,
		senderEmail:    config.SenderEmail,
		senderPass:     config.SenderPassword,
		recipientEmail: config.RecipientEmail,
		htmlTemplate:   tmpl,
	}, nil
}

// GetEmailConfigFromEnv loads email configuration from environment variables
func GetEmailConfigFromEnv() EmailConfig {
	smtpPort := 587
	if portStr := os.Getenv("EMAIL_SMTP_PORT"); portStr != "" {
		if p, err := fmt.Sscanf(portStr, "%d", &smtpPort); err != nil || p != 1 {
			log.Printf("Invalid SMTP port '%s', using default 587", portStr)
			smtpPort = 587
		}
	}

	return EmailConfig{
		SMTPHost:       os.Getenv("EMAIL_SMTP_HOST"),
		SMTPPort:       smtpPort,
		SenderEmail:    os.Getenv("EMAIL_SENDER"),
		SenderPassword: os.Getenv("EMAIL_PASSWORD"),
		RecipientEmail: os.Getenv("EMAIL_RECIPIENT"),
	}
}

// NotifyReportDigest sends an email with every computed report rendered as
// an HTML table, plus an optional narrative paragraph.
func (n *EmailNotifier) NotifyReportDigest(results []report.Result, narrative string, recordCount int, sourceURL string) error {
	if len(results) == 0 {
		log.Println("No reports to notify about")
		return nil
	}

	if n.recipientEmail == "" {
		log.Println("No recipient email configured, skipping digest")
		return nil
	}

	data := struct {
		Date        string
		RecordCount int
		Narrative   string
		Reports     []report.Result
		SourceURL   string
	}{
		Date:        time.Now().Format("January 2, 2006 at 3:04 PM"),
		RecordCount: recordCount,
		Narrative:   narrative,
		Reports:     results,
		SourceURL:   sourceURL,
	}

	var emailBody bytes.Buffer
	if err := n.htmlTemplate.Execute(&emailBody, data); err != nil {
		return fmt.Errorf("failed to render email template: %v", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.senderEmail)
	m.SetHeader("To", n.recipientEmail)
	m.SetHeader("Subject", fmt.Sprintf("Stream Insights: %d reports over %d catalog records",
		len(results), recordCount))

	plainText := fmt.Sprintf(
		"Stream Insights Report Digest\n\n"+
			"%d reports computed on %s over %d catalog records.\n"+
			"Source: %s\n\n"+
			"This is an automated email from Stream Insights. Please do not reply.",
		len(results), data.Date, recordCount, sourceURL)

	m.SetBody("text/plain", plainText)
	m.AddAlternative("text/html", emailBody.String())

	d := gomail.NewDialer(n.smtpHost, n.smtpPort, "api", n.senderPass)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Report digest sent to %s with %d reports", n.recipientEmail, len(results))
	return nil
}
