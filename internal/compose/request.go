// File path: internal/compose/request.go
package compose

import (
	"fmt"
	"strings"
)

// GenerationRequest carries the form parameters for one draft generation.
type GenerationRequest struct {
	StudentName  string `json:"student_name"`
	Recipient    string `json:"recipient"`
	Category     string `json:"category"`
	Purpose      string `json:"purpose"`
	Details      string `json:"details"`
	Tone         string `json:"tone"`
	Style        string `json:"style"`
	Formality    int    `json:"formality"`
	Language     string `json:"language"`
	DocumentText string `json:"document_text,omitempty"`
}

// Category groups the purposes offered for it on the form.
type Category struct {
	Name     string   `json:"name"`
	Purposes []string `json:"purposes"`
}

var Categories = []Category{
	{
		Name: "Academic",
		Purposes: []string{
			"Assignment Extension",
			"Leave Application",
			"Transcript Request",
			"Exam Absence Explanation",
			"Scholarship Request",
		},
	},
	{
		Name: "Career",
		Purposes: []string{
			"Job Application",
			"Internship Application",
			"Recommendation Letter Request",
			"Project Collaboration Request",
			"Fee Waiver / Financial Aid Request",
		},
	},
	{
		Name: "General",
		Purposes: []string{
			"Meeting Request",
			"Research Assistance / Guidance",
			"Event Invitation",
			"Follow-up Email",
			"General Query",
		},
	},
}

var Tones = []string{"Formal", "Polite", "Professional"}

var Styles = []string{"Short & Direct", "Detailed & Elaborate", "Creative"}

var Languages = []string{"English", "Urdu", "French", "German", "Spanish"}

const (
	defaultTone     = "Polite"
	defaultStyle    = "Short & Direct"
	defaultLanguage = "English"

	// DefaultFormality is applied when a request omits the formality slider.
	DefaultFormality = 70
)

// documentPurposes are the only purposes for which attached document text is
// solicited. Text supplied for any other purpose is discarded.
var documentPurposes = map[string]struct{}{
	"Job Application":        {},
	"Internship Application": {},
}

// AcceptsDocument reports whether the purpose solicits an attached CV.
func AcceptsDocument(purpose string) bool {
	_, ok := documentPurposes[strings.TrimSpace(purpose)]
	return ok
}

// NormalizeRequest trims, defaults and validates a generation request. The
// returned request is safe to feed into the prompt builder.
func NormalizeRequest(req GenerationRequest) (GenerationRequest, error) {
	req.StudentName = strings.TrimSpace(req.StudentName)
	req.Recipient = strings.TrimSpace(req.Recipient)
	req.Category = strings.TrimSpace(req.Category)
	req.Purpose = strings.TrimSpace(req.Purpose)
	req.Details = strings.TrimSpace(req.Details)
	req.Tone = strings.TrimSpace(req.Tone)
	req.Style = strings.TrimSpace(req.Style)
	req.Language = strings.TrimSpace(req.Language)

	if req.Purpose == "" {
		return GenerationRequest{}, fmt.Errorf("purpose required")
	}
	category, ok := categoryByName(req.Category)
	if !ok {
		return GenerationRequest{}, fmt.Errorf("unknown category %q", req.Category)
	}
	req.Category = category.Name
	purpose, ok := canonical(category.Purposes, req.Purpose)
	if !ok {
		return GenerationRequest{}, fmt.Errorf("purpose %q does not belong to category %q", req.Purpose, category.Name)
	}
	req.Purpose = purpose

	if req.Tone == "" {
		req.Tone = defaultTone
	} else if tone, ok := canonical(Tones, req.Tone); ok {
		req.Tone = tone
	} else {
		return GenerationRequest{}, fmt.Errorf("unknown tone %q", req.Tone)
	}
	if req.Style == "" {
		req.Style = defaultStyle
	} else if style, ok := canonical(Styles, req.Style); ok {
		req.Style = style
	} else {
		return GenerationRequest{}, fmt.Errorf("unknown writing style %q", req.Style)
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	} else if language, ok := canonical(Languages, req.Language); ok {
		req.Language = language
	} else {
		return GenerationRequest{}, fmt.Errorf("unsupported language %q", req.Language)
	}
	if req.Formality < 0 || req.Formality > 100 {
		return GenerationRequest{}, fmt.Errorf("formality level %d out of range 0-100", req.Formality)
	}

	if req.DocumentText != "" && !AcceptsDocument(req.Purpose) {
		req.DocumentText = ""
	}
	return req, nil
}

func categoryByName(name string) (Category, bool) {
	for _, category := range Categories {
		if strings.EqualFold(category.Name, name) {
			return category, true
		}
	}
	return Category{}, false
}

func canonical(values []string, target string) (string, bool) {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return value, true
		}
	}
	return "", false
}
