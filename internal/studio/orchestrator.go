// Package studio coordinates a generation submission end to end: validation,
// prompt construction, the provider call, and gallery bookkeeping.
package studio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"designgenius/internal/domain"
	"designgenius/internal/gallery"
	"designgenius/internal/prompt"
)

// Generator is the remote image provider contract.
type Generator interface {
	GenerateImage(ctx context.Context, finalPrompt string, ratio domain.AspectRatio) (domain.ImageData, error)
}

// Studio owns the one-submission-at-a-time discipline. Overlapping
// submissions are rejected, which keeps asset ids and the selection pointer
// free of races without any further locking.
type Studio struct {
	gallery   *gallery.Store
	generator Generator
	timeout   time.Duration
	logger    zerolog.Logger
	inflight  *semaphore.Weighted
}

// New constructs a Studio. A non-positive timeout disables the per-submission
// deadline.
func New(store *gallery.Store, generator Generator, timeout time.Duration, logger zerolog.Logger) *Studio {
	return &Studio{
		gallery:   store,
		generator: generator,
		timeout:   timeout,
		logger:    logger,
		inflight:  semaphore.NewWeighted(1),
	}
}

// Submit runs one generation attempt. On success the new asset is inserted at
// the front of the gallery and becomes the selection. On any failure the
// gallery and selection are left untouched and the error is terminal for this
// submission; there are no retries.
func (s *Studio) Submit(ctx context.Context, req domain.GenerationRequest) (domain.GeneratedAsset, error) {
	if err := req.Validate(); err != nil {
		return domain.GeneratedAsset{}, err
	}

	if !s.inflight.TryAcquire(1) {
		return domain.GeneratedAsset{}, domain.ErrGenerationInFlight
	}
	defer s.inflight.Release(1)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	finalPrompt := prompt.Build(req)
	s.logger.Debug().
		Str("category", string(req.Category)).
		Str("aspect_ratio", string(req.AspectRatio)).
		Str("final_prompt", finalPrompt).
		Msg("studio: submitting generation")

	image, err := s.generator.GenerateImage(ctx, finalPrompt, req.AspectRatio)
	if err != nil {
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			s.logger.Warn().
				Err(err).
				Str("failure_kind", string(genErr.Kind)).
				Str("category", string(req.Category)).
				Msg("studio: generation failed")
			return domain.GeneratedAsset{}, genErr
		}
		s.logger.Warn().Err(err).Str("category", string(req.Category)).Msg("studio: generation failed")
		return domain.GeneratedAsset{}, domain.NewServiceError("", err)
	}

	// A completion that arrives after the caller gave up must not resurrect
	// an abandoned submission.
	if err := ctx.Err(); err != nil {
		s.logger.Debug().Err(err).Msg("studio: discarding stale completion")
		return domain.GeneratedAsset{}, domain.NewServiceError("generation canceled", err)
	}

	asset := domain.GeneratedAsset{
		ID:          uuid.NewString(),
		Category:    req.Category,
		Prompt:      req.FreeText,
		Title:       req.Title,
		Image:       image,
		CreatedAt:   time.Now(),
		AspectRatio: req.AspectRatio,
	}
	if err := s.gallery.Insert(asset); err != nil {
		return domain.GeneratedAsset{}, err
	}
	if err := s.gallery.Select(asset.ID); err != nil {
		return domain.GeneratedAsset{}, err
	}

	s.logger.Info().
		Str("asset_id", asset.ID).
		Str("category", string(req.Category)).
		Str("aspect_ratio", string(req.AspectRatio)).
		Msg("studio: asset generated")
	return asset, nil
}
