// File path: internal/api/types.go
package api

import (
	"github.com/draftwise/draftwise/internal/compose"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type catalogResponse struct {
	Categories []compose.Category `json:"categories"`
	Tones      []string           `json:"tones"`
	Styles     []string           `json:"styles"`
	Languages  []string           `json:"languages"`
}

// generateRequest mirrors compose.GenerationRequest with an optional formality
// so an omitted slider falls back to the form default.
type generateRequest struct {
	StudentName  string `json:"student_name"`
	Recipient    string `json:"recipient"`
	Category     string `json:"category"`
	Purpose      string `json:"purpose"`
	Details      string `json:"details"`
	Tone         string `json:"tone"`
	Style        string `json:"style"`
	Formality    *int   `json:"formality"`
	Language     string `json:"language"`
	DocumentText string `json:"document_text"`
}

func (r generateRequest) toGenerationRequest() compose.GenerationRequest {
	formality := compose.DefaultFormality
	if r.Formality != nil {
		formality = *r.Formality
	}
	return compose.GenerationRequest{
		StudentName:  r.StudentName,
		Recipient:    r.Recipient,
		Category:     r.Category,
		Purpose:      r.Purpose,
		Details:      r.Details,
		Tone:         r.Tone,
		Style:        r.Style,
		Formality:    formality,
		Language:     r.Language,
		DocumentText: r.DocumentText,
	}
}

type removeDraftRequest struct {
	ID      int64  `json:"id,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

type uploadResponse struct {
	Text    string `json:"text"`
	Warning string `json:"warning,omitempty"`
}
