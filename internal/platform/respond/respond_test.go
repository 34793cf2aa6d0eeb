package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-sitting-service/internal/platform/apierr"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestOK_WrapsDataInSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"name": "maria"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.Equal(t, "success", env.Status)
	assert.Nil(t, env.Error)
	assert.NotNil(t, env.Data)
}

func TestCreated_Returns201(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", decode(t, rec).Status)
}

func TestDeleted_AcksWithID(t *testing.T) {
	rec := httptest.NewRecorder()
	Deleted(rec, "abc-123")

	assert.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Status string    `json:"status"`
		Data   DeleteAck `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "abc-123", env.Data.ID)
}

func TestError_StatusMappingByKind(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"validation", apierr.Validation("name is required"), http.StatusBadRequest, "ValidationError"},
		{"reference", apierr.Reference("owner", "nope"), http.StatusBadRequest, "ReferenceError"},
		{"not found", apierr.NotFound("dog"), http.StatusNotFound, "NotFoundError"},
		{"store", apierr.Store(errors.New("conn refused")), http.StatusInternalServerError, "StoreError"},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "StoreError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)

			env := decode(t, rec)
			assert.Equal(t, "error", env.Status)
			assert.Nil(t, env.Data)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.wantKind, env.Error.Kind)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestError_StoreMessageIsSanitized(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apierr.Store(errors.New("pq: password authentication failed for user admin")))

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "storage operation failed", env.Error.Message)
	assert.NotContains(t, env.Error.Message, "password")
}
