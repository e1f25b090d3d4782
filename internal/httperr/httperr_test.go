package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusinessThroughWrapping(t *testing.T) {
	base := NewBusiness(http.StatusBadRequest, "slot_unavailable", "Date not available")
	err := fmt.Errorf("book: %w", base)

	assert.True(t, IsBusiness(err, "slot_unavailable"))
	assert.False(t, IsBusiness(err, "past_date"))
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, http.StatusBadRequest, Status(err))
}

func TestStatusDefaultsToInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_active_slot"}

	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", dup), ""))
	assert.True(t, IsUniqueViolation(dup, "idx_active_slot"))
	assert.False(t, IsUniqueViolation(dup, "users_email_key"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"business", NewBusiness(http.StatusUnauthorized, "not_a_provider", "nope"), http.StatusUnauthorized, "not_a_provider"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
