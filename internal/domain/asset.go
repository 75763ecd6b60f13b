package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// AssetCategory enumerates the kinds of design artifacts the studio produces.
type AssetCategory string

const (
	CategoryLogo        AssetCategory = "Logo"
	CategoryThumbnail   AssetCategory = "Thumbnail"
	CategoryBanner      AssetCategory = "Banner"
	CategorySocialPost  AssetCategory = "Social Post"
	CategorySocialStory AssetCategory = "Social Story"
)

// Categories lists every supported category in presentation order.
func Categories() []AssetCategory {
	return []AssetCategory{
		CategoryLogo,
		CategoryThumbnail,
		CategoryBanner,
		CategorySocialPost,
		CategorySocialStory,
	}
}

// ParseCategory resolves user input into a known category. Matching is
// case-insensitive and tolerates slugged forms like "social-post".
func ParseCategory(s string) (AssetCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	for _, c := range Categories() {
		if normalized == strings.ToLower(string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether the category is one of the closed set.
func (c AssetCategory) Valid() bool {
	switch c {
	case CategoryLogo, CategoryThumbnail, CategoryBanner, CategorySocialPost, CategorySocialStory:
		return true
	}
	return false
}

// Slug returns the lowercase hyphenated form used in download filenames.
func (c AssetCategory) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// DefaultAspectRatio returns the ratio preselected for the category.
func (c AssetCategory) DefaultAspectRatio() AspectRatio {
	switch c {
	case CategoryThumbnail, CategoryBanner:
		return RatioLandscape
	case CategorySocialStory:
		return RatioPortrait
	case CategoryLogo, CategorySocialPost:
		return RatioSquare
	}
	return RatioSquare
}

// AspectRatio is the width:height shape constraint passed to the generator.
type AspectRatio string

const (
	RatioSquare            AspectRatio = "1:1"
	RatioLandscape         AspectRatio = "16:9"
	RatioPortrait          AspectRatio = "9:16"
	RatioStandardPortrait  AspectRatio = "3:4"
	RatioStandardLandscape AspectRatio = "4:3"
)

// AspectRatios lists every supported ratio in presentation order.
func AspectRatios() []AspectRatio {
	return []AspectRatio{
		RatioSquare,
		RatioLandscape,
		RatioPortrait,
		RatioStandardPortrait,
		RatioStandardLandscape,
	}
}

// ParseAspectRatio resolves user input into a known ratio.
func ParseAspectRatio(s string) (AspectRatio, error) {
	trimmed := strings.TrimSpace(s)
	for _, r := range AspectRatios() {
		if trimmed == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAspectRatio, s)
}

// Valid reports whether the ratio is one of the closed set.
func (r AspectRatio) Valid() bool {
	switch r {
	case RatioSquare, RatioLandscape, RatioPortrait, RatioStandardPortrait, RatioStandardLandscape:
		return true
	}
	return false
}

// StylePresets are the fixed visual-style descriptors offered to the user.
// The first entry is the default when no style is supplied.
var StylePresets = []string{
	"Modern & Minimalist",
	"Cyberpunk & Neon",
	"Vintage & Retro",
	"Corporate & Professional",
	"3D Render & Glossy",
	"Hand Drawn & Artistic",
	"Abstract & Geometric",
	"Luxury & Elegant",
}

// DefaultStyle returns the preset applied when the user picks none.
func DefaultStyle() string {
	return StylePresets[0]
}

// ImageData is the normalized payload returned by a generation provider.
type ImageData struct {
	MIME string
	Data []byte
}

// DataURI renders the image as a self-contained displayable reference.
func (d ImageData) DataURI() string {
	mime := d.MIME
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(d.Data)
}

// GeneratedAsset is a single generated image plus its generation metadata.
// It is created once, when a generation call succeeds, and never updated:
// the gallery only inserts and deletes.
type GeneratedAsset struct {
	ID          string
	Category    AssetCategory
	Prompt      string // the raw free text the user typed, not the enhanced prompt
	Title       string
	Image       ImageData
	CreatedAt   time.Time
	AspectRatio AspectRatio
}

// Filename is the download name for the asset, following the
// "<category>-<timestamp>.png" convention.
func (a GeneratedAsset) Filename() string {
	return fmt.Sprintf("%s-%d.png", a.Category.Slug(), a.CreatedAt.UnixMilli())
}
