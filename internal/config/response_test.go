package config_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
	"github.com/saulo-duarte/quiz-arena/internal/config"
)

func TestWriteError(t *testing.T) {
	t.Run("ValidationIsBadRequest", func(t *testing.T) {
		rec := httptest.NewRecorder()
		config.WriteError(rec, apperr.Validation("difficulty must be one of easy, medium, hard"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "difficulty must be one of easy, medium, hard", body["error"])
	})

	t.Run("UnknownErrorIsHidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		config.WriteError(rec, errors.New("sql: database is closed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database is closed")
	})
}
