package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"designgenius/internal/domain"
	"designgenius/internal/gallery"
	"designgenius/internal/infra"
	"designgenius/internal/studio"
)

type stubGenerator struct {
	calls      int
	lastPrompt string
	lastRatio  domain.AspectRatio
	image      domain.ImageData
	err        error
}

func (s *stubGenerator) GenerateImage(ctx context.Context, finalPrompt string, ratio domain.AspectRatio) (domain.ImageData, error) {
	s.calls++
	s.lastPrompt = finalPrompt
	s.lastRatio = ratio
	if s.err != nil {
		return domain.ImageData{}, s.err
	}
	return s.image, nil
}

func newTestApp(gen *stubGenerator) (*App, *gallery.Store) {
	store := gallery.NewStore()
	st := studio.New(store, gen, time.Minute, zerolog.Nop())
	cfg := &infra.Config{RateLimitPerMin: 60}
	return NewApp(cfg, zerolog.Nop(), st, store), store
}

func TestGenerateHandler(t *testing.T) {
	testCases := []struct {
		name       string
		body       map[string]any
		generator  *stubGenerator
		wantStatus int
		wantCalls  int
		wantRatio  domain.AspectRatio
	}{{
		name: "success with explicit ratio",
		body: map[string]any{
			"prompt":       "a rocket icon",
			"title":        "Acme",
			"style":        "Cyberpunk & Neon",
			"category":     "Logo",
			"aspect_ratio": "3:4",
		},
		generator:  &stubGenerator{image: domain.ImageData{MIME: "image/png", Data: []byte{0x01}}},
		wantStatus: http.StatusCreated,
		wantCalls:  1,
		wantRatio:  domain.RatioStandardPortrait,
	}, {
		name: "ratio defaults per category",
		body: map[string]any{
			"prompt":   "channel art",
			"category": "Thumbnail",
		},
		generator:  &stubGenerator{image: domain.ImageData{MIME: "image/png", Data: []byte{0x01}}},
		wantStatus: http.StatusCreated,
		wantCalls:  1,
		wantRatio:  domain.RatioLandscape,
	}, {
		name: "both prompt and title empty",
		body: map[string]any{
			"prompt":   "  ",
			"title":    "",
			"category": "Logo",
		},
		generator:  &stubGenerator{},
		wantStatus: http.StatusUnprocessableEntity,
		wantCalls:  0,
	}, {
		name: "unknown category",
		body: map[string]any{
			"prompt":   "something",
			"category": "Poster",
		},
		generator:  &stubGenerator{},
		wantStatus: http.StatusBadRequest,
		wantCalls:  0,
	}, {
		name: "unknown ratio",
		body: map[string]any{
			"prompt":       "something",
			"category":     "Logo",
			"aspect_ratio": "2:1",
		},
		generator:  &stubGenerator{},
		wantStatus: http.StatusBadRequest,
		wantCalls:  0,
	}, {
		name: "provider failure",
		body: map[string]any{
			"prompt":   "a rocket icon",
			"category": "Logo",
		},
		generator:  &stubGenerator{err: domain.NewServiceError("model overloaded", nil)},
		wantStatus: http.StatusBadGateway,
		wantCalls:  1,
	}, {
		name: "no image in response",
		body: map[string]any{
			"prompt":   "a rocket icon",
			"category": "Logo",
		},
		generator:  &stubGenerator{err: domain.NewNoImageError("no image data found in the response")},
		wantStatus: http.StatusBadGateway,
		wantCalls:  1,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, store := newTestApp(tc.generator)

			bodyBytes, err := json.Marshal(tc.body)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			app.Generate(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d; body=%s", rr.Code, tc.wantStatus, rr.Body.String())
			}
			if tc.generator.calls != tc.wantCalls {
				t.Fatalf("generator calls = %d, want %d", tc.generator.calls, tc.wantCalls)
			}

			if tc.wantStatus == http.StatusCreated {
				if tc.generator.lastRatio != tc.wantRatio {
					t.Fatalf("ratio sent = %s, want %s", tc.generator.lastRatio, tc.wantRatio)
				}
				var resp assetResponse
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Prompt != tc.body["prompt"] {
					t.Fatalf("response prompt = %q, want raw input", resp.Prompt)
				}
				if !strings.HasPrefix(resp.ImageURI, "data:image/png;base64,") {
					t.Fatalf("image uri = %q", resp.ImageURI)
				}
				if store.Len() != 1 {
					t.Fatalf("gallery len = %d, want 1", store.Len())
				}
				if selected, ok := store.Selected(); !ok || selected.ID != resp.ID {
					t.Fatal("new asset should be selected")
				}
			} else if store.Len() != 0 {
				t.Fatalf("gallery must stay empty, len = %d", store.Len())
			}
		})
	}
}

func TestGenerateHandlerDefaultsStyle(t *testing.T) {
	gen := &stubGenerator{image: domain.ImageData{MIME: "image/png", Data: []byte{0x01}}}
	app, _ := newTestApp(gen)

	body := []byte(`{"prompt":"a rocket icon","category":"Logo"}`)
	rr := httptest.NewRecorder()
	app.Generate(rr, httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(body)))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(gen.lastPrompt, "Style: Modern & Minimalist.") {
		t.Fatalf("default style not applied: %s", gen.lastPrompt)
	}
}

func TestGenerateHandlerInvalidPayload(t *testing.T) {
	app, _ := newTestApp(&stubGenerator{})
	rr := httptest.NewRecorder()
	app.Generate(rr, httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader("{not json")))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
