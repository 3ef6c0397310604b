package http

import "advisor-edge/internal/contact"

type submitReq struct {
	Name           string `json:"name" example:"Ana Tremblay"`
	Company        string `json:"company" example:"Acme Medical"`
	Email          string `json:"email" example:"ana@example.com"`
	Subject        string `json:"subject" example:"IEC 62304 gap analysis"`
	Message        string `json:"message"`
	Locale         string `json:"locale" enums:"en,fr"`
	RecaptchaToken string `json:"recaptchaToken"`
}

func (r submitReq) toInput(clientIP string) contact.SubmitInput {
	return contact.SubmitInput{
		Name:           r.Name,
		Company:        r.Company,
		Email:          r.Email,
		Subject:        r.Subject,
		Message:        r.Message,
		Locale:         r.Locale,
		RecaptchaToken: r.RecaptchaToken,
		ClientIP:       clientIP,
	}
}

type submitResp struct {
	Success bool `json:"success"`
}
