package service

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	apperrors "kubera-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }

// randomToken returns n random bytes encoded as unpadded URL-safe base64.
func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// validationError converts validator output into the application taxonomy.
func validationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		first := verrs[0]
		return apperrors.NewValidationError(first.Field(), fmt.Sprintf("failed on the '%s' rule", first.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mustJSON(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

// normalizePagination clamps limit and offset to sane bounds.
func normalizePagination(limit, offset int) (int, int) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
