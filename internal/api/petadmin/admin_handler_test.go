package petadmin

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *Handler {
	logger := slog.Default()
	return NewAdminHandler(NewAdminService(logger), logger)
}

func postJSON(t *testing.T, method, path string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitHandler(t *testing.T) {
	handler := newHandler()

	t.Run("Success", func(t *testing.T) {
		req := postJSON(t, http.MethodPost, "/api/PetAdmin/Submit", validSubmit())
		w := httptest.NewRecorder()

		handler.Submit(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response ConfirmationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Thank you for submitting 'Whiskers'.", response.Message)
		assert.NotEmpty(t, response.Reference)
	})

	t.Run("TypeGoldfish", func(t *testing.T) {
		payload := validSubmit()
		payload.Type = "goldfish"

		req := postJSON(t, http.MethodPost, "/api/PetAdmin/Submit", payload)
		w := httptest.NewRecorder()

		handler.Submit(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var reasons []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reasons))
		assert.Contains(t, reasons, "Name must contain the word 'Cat' or 'Dog' (case-insensitive)")
	})

	t.Run("ExtraKeysIgnored", func(t *testing.T) {
		body := `{"Type":"cat","Name":"Whiskers","Breed":"Tabby","Age":"4",` +
			`"Location":"Paw Pad","PhoneNumber":"(555) 123-4567",` +
			`"Email":"whiskers@pawpad.com","PetID":"895210","Color":"orange"}`

		req := httptest.NewRequest(http.MethodPost, "/api/PetAdmin/Submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Submit(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response ConfirmationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Thank you for submitting 'Whiskers'.", response.Message)
	})

	t.Run("BadJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/PetAdmin/Submit", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Submit(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateHandler(t *testing.T) {
	handler := newHandler()

	t.Run("Success", func(t *testing.T) {
		req := postJSON(t, http.MethodPut, "/api/PetAdmin/Update", validUpdate())
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response ConfirmationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "You have requested to update '895210'.", response.Message)
	})

	t.Run("ItemizedFieldErrors", func(t *testing.T) {
		payload := validUpdate()
		payload.PetID = "C895210"
		payload.PhoneNumber = "555"

		req := postJSON(t, http.MethodPut, "/api/PetAdmin/Update", payload)
		w := httptest.NewRecorder()

		handler.Update(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var reasons []string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reasons))
		require.Len(t, reasons, 2)
		assert.Equal(t, "PetID must be a 6-digit number", reasons[0])
		assert.Equal(t, "PhoneNumber must be in the format (XXX) XXX-XXXX", reasons[1])
	})
}
