package contact

// SubmitInput is one contact-form submission.
type SubmitInput struct {
	Name           string
	Company        string
	Email          string
	Subject        string
	Message        string
	Locale         string
	RecaptchaToken string
	ClientIP       string
}
