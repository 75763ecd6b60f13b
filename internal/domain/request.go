package domain

import "strings"

// GenerationRequest carries one user submission through validation, prompt
// construction and the provider call.
type GenerationRequest struct {
	FreeText    string
	Title       string
	Style       string
	Category    AssetCategory
	AspectRatio AspectRatio
}

// Validate enforces the submission rule: free text and title must not both be
// empty. Category and ratio membership is also checked so downstream template
// selection can treat unknown values as programming errors.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.FreeText) == "" && strings.TrimSpace(r.Title) == "" {
		return ErrMissingInput
	}
	if !r.Category.Valid() {
		return ErrUnknownCategory
	}
	if !r.AspectRatio.Valid() {
		return ErrUnknownAspectRatio
	}
	return nil
}

// EffectiveBody returns the descriptive text embedded in the final prompt.
// When the user typed nothing but supplied a title, a stand-in concept line
// is derived from the title. Callers must have validated the request first.
func (r GenerationRequest) EffectiveBody() string {
	body := strings.TrimSpace(r.FreeText)
	if body != "" {
		return body
	}
	if title := strings.TrimSpace(r.Title); title != "" {
		return "A creative concept representing " + title
	}
	return ""
}
