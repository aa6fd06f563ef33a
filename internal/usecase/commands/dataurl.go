package commands

import (
	"encoding/base64"
	"strings"

	"merch-store/internal/pkg/errs"
)

var ErrInvalidDataURL = errs.New("invalid data URL")

// DecodeDataURL splits a data:<mime>;base64,<payload> URL into its mime
// type and raw bytes. Only base64 payloads are accepted.
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	mime, encoded := meta, false
	if m, found := strings.CutSuffix(meta, ";base64"); found {
		mime, encoded = m, true
	}
	if !encoded {
		return "", nil, ErrInvalidDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return "", nil, ErrInvalidDataURL
	}
	return mime, data, nil
}

// IsDataURL reports whether s looks like an inline data URL rather than a
// fetchable http(s) location.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}
