package hxtable

import (
	"errors"

	"github.com/pthm/hxtable/table"
)

// Sentinel errors for table requests.
var (
	ErrNotFound         = errors.New("hxtable: resource not found")
	ErrInvalidState     = errors.New("hxtable: invalid table state")
	ErrDecryptFailed    = errors.New("hxtable: state decryption failed")
	ErrSignatureInvalid = errors.New("hxtable: signature verification failed")
	ErrSourceFailed     = errors.New("hxtable: row source failed")
	ErrUnknownAction    = errors.New("hxtable: unknown action")
	ErrNotMounted       = errors.New("hxtable: table is not registered")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnknownAction)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsBadRequest checks if err was caused by the client: tampered or
// malformed state, or an event the table cannot apply.
func IsBadRequest(err error) bool {
	return IsDecryptionError(err) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, table.ErrUnknownColumn) ||
		errors.Is(err, table.ErrInvalidPageSize)
}
