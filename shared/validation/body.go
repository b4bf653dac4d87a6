package validation

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodySize bounds every JSON request body accepted by the api.
const MaxBodySize = 1 << 20

// ReadBody reads the whole request body, stopping at maxSize.
// Exceeding the limit yields ErrPayloadTooLarge.
func ReadBody(w http.ResponseWriter, r *http.Request, maxSize int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, maxSize)
		}
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return raw, nil
}
