package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct. Handlers
// validate the decoded value themselves with their own validator
// instance, so malformed JSON is the only failure mode here.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
