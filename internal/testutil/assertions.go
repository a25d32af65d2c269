package testutil

import (
	"errors"
	"testing"

	apperrors "assetfolio/internal/errors"
)

// AssertAppError checks that err carries an *AppError with the given code.
// Wrapped errors unwrap via errors.As, so service-layer wrapping does not
// hide the sentinel.
func AssertAppError(t *testing.T, err error, wantCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("want AppError %q, got nil", wantCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("want *AppError, got %T: %v", err, err)
	}

	if appErr.Code != wantCode {
		t.Errorf("want error code %q, got %q (%s)", wantCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
