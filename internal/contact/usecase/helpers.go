package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const maxFieldLength = 5000

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	htmlEscaper  = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&#x27;")
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// sanitizeHTML escapes markup characters and caps the result.
func sanitizeHTML(s string) string {
	s = htmlEscaper.Replace(s)
	if runes := []rune(s); len(runes) > maxFieldLength {
		s = string(runes[:maxFieldLength])
	}
	return s
}

type emailFields struct {
	Name     string
	Company  string
	Email    string
	Subject  string
	Message  string
	Locale   string
	ClientIP string
	SentAt   time.Time
}

// buildEmailHTML renders the notification body. Fields must already be sanitized.
func buildEmailHTML(f emailFields) string {
	return fmt.Sprintf(`<div style="font-family:Inter,Arial,sans-serif;line-height:1.6;color:#111">
  <h2 style="margin:0 0 12px">New Contact Message</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Company:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Subject:</strong> %s</p>
  <p><strong>Locale:</strong> %s</p>
  <p><strong>IP Address:</strong> %s</p>
  <p><strong>Timestamp:</strong> %s</p>
  <hr/>
  <p><strong>Message:</strong></p>
  <p>%s</p>
</div>`,
		f.Name, f.Company, f.Email, f.Subject, f.Locale, f.ClientIP,
		f.SentAt.UTC().Format(time.RFC3339), f.Message)
}
