package domain

import "errors"

var (
	ErrMissingInput       = errors.New("please provide a description or a title")
	ErrUnknownCategory    = errors.New("unknown asset category")
	ErrUnknownAspectRatio = errors.New("unknown aspect ratio")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateAsset     = errors.New("duplicate asset id")
	ErrGenerationInFlight = errors.New("a generation is already in progress")
)

// GenerationFailureKind separates the two ways a generation attempt can fail
// after validation. Users see both the same way; diagnostics must not.
type GenerationFailureKind string

const (
	// FailureService covers transport errors, timeouts and non-success
	// responses from the image provider.
	FailureService GenerationFailureKind = "service"
	// FailureNoImage covers transport-successful responses that carried no
	// usable image part.
	FailureNoImage GenerationFailureKind = "no_image"
)

// GenerationError is the terminal failure of a single generation attempt.
type GenerationError struct {
	Kind    GenerationFailureKind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "image generation failed"
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps a provider or transport failure.
func NewServiceError(message string, err error) *GenerationError {
	return &GenerationError{Kind: FailureService, Message: message, Err: err}
}

// NewNoImageError marks a well-formed response that contained no image.
func NewNoImageError(message string) *GenerationError {
	return &GenerationError{Kind: FailureNoImage, Message: message}
}
