// Package prompt turns a validated generation request into the final
// natural-language instruction sent to the image provider.
package prompt

import (
	"fmt"
	"strings"

	"designgenius/internal/domain"
)

// Build composes the final prompt for the request. It is pure and
// deterministic: identical requests always produce identical strings. The
// request must already be validated; an out-of-set category is a programming
// error and panics.
func Build(req domain.GenerationRequest) string {
	title := strings.TrimSpace(req.Title)

	var suffix strings.Builder
	suffix.WriteString("Style: " + req.Style + ". High quality, professional, detailed.")
	if title != "" {
		suffix.WriteString(fmt.Sprintf(" The image MUST prominently display the text %q in a readable font matching the style.", title))
	}

	var prefix string
	switch req.Category {
	case domain.CategoryLogo:
		prefix = "A professional vector logo design "
		if title != "" {
			prefix += fmt.Sprintf("for the brand %q, ", title)
		} else {
			prefix += "of "
		}
		suffix.WriteString(" Vector graphic, flat design, centered, minimal background, highly scalable, clear typography.")
	case domain.CategoryThumbnail:
		prefix = "A catchy, high-contrast YouTube thumbnail "
		if title != "" {
			prefix += fmt.Sprintf("featuring the title text %q, ", title)
		}
		suffix.WriteString(" Vibrant colors, eye-catching, emotional connection, 4k resolution, bold typography.")
	case domain.CategoryBanner:
		prefix = "A wide web banner design "
		if title != "" {
			prefix += fmt.Sprintf("with the headline %q, ", title)
		} else {
			prefix += "for "
		}
		suffix.WriteString(" Clean layout, suitable for website headers, balanced composition, negative space for text.")
	case domain.CategorySocialPost:
		prefix = "A creative social media post image "
		if title != "" {
			prefix += fmt.Sprintf("promoting %q, ", title)
		} else {
			prefix += "for "
		}
		suffix.WriteString(" Instagram aesthetic, engaging, trending visual style, integrated typography.")
	case domain.CategorySocialStory:
		prefix = "A vertical full-screen social media story background "
		if title != "" {
			prefix += fmt.Sprintf("highlighting %q, ", title)
		} else {
			prefix += "for "
		}
		suffix.WriteString(" Immersive, vertical composition, mobile-first design, legible overlay text.")
	default:
		panic(fmt.Sprintf("prompt: unknown asset category %q", req.Category))
	}

	return prefix + req.EffectiveBody() + ". " + suffix.String()
}
