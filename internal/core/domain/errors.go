package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput: zero-length upload, rejected before any provider call.
	ErrEmptyInput = errors.New("empty input")
	// ErrOCRFailure: every OCR provider in the chain was exhausted.
	ErrOCRFailure = errors.New("ocr provider failure")
	// ErrInsufficientText: extraction succeeded but yielded fewer than the
	// minimum usable characters.
	ErrInsufficientText = errors.New("insufficient text")

	ErrInvalidInput     = errors.New("invalid input")
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrTemporary        = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// UserMessage maps an error to the Hindi message shown to end users.
func UserMessage(err error) string {
	switch {
	case IsKind(err, ErrEmptyInput), IsKind(err, ErrOCRFailure):
		return "दस्तावेज़ से टेक्स्ट नहीं निकाल पाए। कृपया साफ़ फोटो अपलोड करें।"
	case IsKind(err, ErrInsufficientText):
		return "दस्तावेज़ से पर्याप्त टेक्स्ट नहीं मिला। कृपया अच्छी क्वालिटी की फोटो अपलोड करें।"
	case IsKind(err, ErrInvalidInput):
		return "केवल PNG, JPG, PDF फ़ाइलें स्वीकार हैं।"
	case IsKind(err, ErrAnalysisNotFound):
		return "दस्तावेज़ नहीं मिला।"
	default:
		return "दस्तावेज़ विश्लेषण में त्रुटि हुई। कृपया पुनः प्रयास करें।"
	}
}
