package notifier

import (
	"testing"

	"stream-insights/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailNotifier(t *testing.T) {
	n, err := NewEmailNotifier(EmailConfig{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       587,
		SenderEmail:    "digest@example.com",
		RecipientEmail: "analyst@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, n)
}

func TestGetEmailConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("EMAIL_SMTP_PORT", "")
	t.Setenv("EMAIL_SMTP_HOST", "smtp.example.com")

	config := GetEmailConfigFromEnv()
	assert.Equal(t, 587, config.SMTPPort)
	assert.Equal(t, "smtp.example.com", config.SMTPHost)

	t.Setenv("EMAIL_SMTP_PORT", "not-a-port")
	config = GetEmailConfigFromEnv()
	assert.Equal(t, 587, config.SMTPPort)

	t.Setenv("EMAIL_SMTP_PORT", "2525")
	config = GetEmailConfigFromEnv()
	assert.Equal(t, 2525, config.SMTPPort)
}

func TestNotifyReportDigestSkipsWithoutRecipient(t *testing.T) {
	n, err := NewEmailNotifier(EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587})
	require.NoError(t, err)

	results := []report.Result{{
		Name:    "titles-by-type",
		Title:   "Movies vs TV shows",
		Columns: []string{"type", "total_count"},
		Rows:    [][]string{{"Movie", "5"}},
	}}

	// No recipient configured: the digest is skipped, not an error.
	assert.NoError(t, n.NotifyReportDigest(results, "", 5, "http://example.com/catalog.csv"))

	// Nothing to report is not an error either.
	assert.NoError(t, n.NotifyReportDigest(nil, "", 0, "http://example.com/catalog.csv"))
}
