// Package genai wraps the Gemini generateContent endpoint for image
// generation. Each call is a single attempt: no retries, no caching, no
// fallback output.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"designgenius/internal/domain"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client issues image-generation requests against the Gemini API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type geminiGenerationConfig struct {
	ImageConfig *geminiImageConfig `json:"imageConfig,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with a request timeout will be created.
func NewClient(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image"
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: client,
		logger:     opts.Logger,
	}
}

// Model returns the configured Gemini model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateImage sends the prompt to the model and returns the first inline
// image from the response. A transport or service failure yields a
// service-kind GenerationError; a well-formed response without an image part
// yields a no-image-kind GenerationError.
func (c *Client) GenerateImage(ctx context.Context, finalPrompt string, ratio domain.AspectRatio) (domain.ImageData, error) {
	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: finalPrompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			ImageConfig: &geminiImageConfig{AspectRatio: string(ratio)},
		},
	}

	var response geminiGenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.model))
	if err := c.invoke(ctx, path, payload, &response); err != nil {
		return domain.ImageData{}, err
	}

	if len(response.Candidates) == 0 {
		c.logger.Warn().Str("model", c.model).Msg("genai: response carried no candidates")
		return domain.ImageData{}, domain.NewNoImageError("no candidates returned from the image service")
	}

	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return domain.ImageData{}, domain.NewServiceError("malformed image payload", err)
			}
			mime := part.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			c.logger.Debug().
				Str("model", c.model).
				Str("mime", mime).
				Int("bytes", len(data)).
				Msg("genai: image generated")
			return domain.ImageData{MIME: mime, Data: data}, nil
		}
	}

	c.logger.Warn().Str("model", c.model).Msg("genai: response carried no image part")
	return domain.ImageData{}, domain.NewNoImageError("no image data found in the response")
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	endpoint := c.baseURL + path
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.NewServiceError("", fmt.Errorf("marshal request: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.NewServiceError("", fmt.Errorf("create request: %w", err))
	}
	if c.apiKey != "" {
		q := req.URL.Query()
		q.Set("key", c.apiKey)
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewServiceError("", fmt.Errorf("invoke gemini: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return domain.NewServiceError(apiErr.Error.Message, fmt.Errorf("gemini status %d", resp.StatusCode))
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return domain.NewServiceError("", fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))))
		}
		return domain.NewServiceError("", fmt.Errorf("gemini status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewServiceError("", fmt.Errorf("decode gemini response: %w", err))
	}
	return nil
}
