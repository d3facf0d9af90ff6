package hxtable

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pthm/hxtable/lib/encoding"
	"github.com/pthm/hxtable/table"
)

func TestSentinelErrors(t *testing.T) {
	errs := []error{
		ErrNotFound,
		ErrInvalidState,
		ErrDecryptFailed,
		ErrSignatureInvalid,
		ErrSourceFailed,
		ErrUnknownAction,
		ErrNotMounted,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		notFound   bool
		decryption bool
		badRequest bool
	}{
		{"nil error", nil, false, false, false},
		{"ErrNotFound", ErrNotFound, true, false, false},
		{"unknown action", fmt.Errorf("%w: %q", ErrUnknownAction, "x"), true, false, false},
		{"signature", ErrSignatureInvalid, false, true, true},
		{"wrapped decrypt", fmt.Errorf("x: %w", ErrDecryptFailed), false, true, true},
		{"invalid state", ErrInvalidState, false, false, true},
		{"unknown column", fmt.Errorf("%w: %q", table.ErrUnknownColumn, "x"), false, false, true},
		{"source failure", ErrSourceFailed, false, false, false},
		{"other error", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.notFound)
			}
			if got := IsDecryptionError(tt.err); got != tt.decryption {
				t.Errorf("IsDecryptionError() = %v, want %v", got, tt.decryption)
			}
			if got := IsBadRequest(tt.err); got != tt.badRequest {
				t.Errorf("IsBadRequest() = %v, want %v", got, tt.badRequest)
			}
		})
	}
}

func TestWrapEncodingError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"signature", encoding.ErrSignatureInvalid, ErrSignatureInvalid},
		{"decrypt", fmt.Errorf("%w: short", encoding.ErrDecryptFailed), ErrDecryptFailed},
		{"format", fmt.Errorf("%w: bad", encoding.ErrInvalidFormat), ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapEncodingError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("wrapEncodingError() = %v, want %v", got, tt.want)
			}
		})
	}

	if wrapEncodingError(nil) != nil {
		t.Error("wrapEncodingError(nil) should be nil")
	}
	other := errors.New("other")
	if wrapEncodingError(other) != other {
		t.Error("unrelated errors should pass through")
	}
}
