package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxJSONBody bounds JSON request bodies. Content documents are small; 1 MiB
// leaves generous headroom.
const maxJSONBody = 1 << 20

// ParseJSON decodes the request body into dest, limiting its size.
// Unknown fields are allowed: page and project documents carry free-form
// content fields that are stored verbatim.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
