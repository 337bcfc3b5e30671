package shared

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("decodes a valid body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "diff", "count": 3}`))

		var got payload
		require.NoError(t, DecodeJSON(req, &got))
		assert.Equal(t, payload{Name: "diff", Count: 3}, got)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": `))

		var got payload
		assert.Error(t, DecodeJSON(req, &got))
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"count": "three"}`))

		var got payload
		assert.Error(t, DecodeJSON(req, &got))
	})
}
