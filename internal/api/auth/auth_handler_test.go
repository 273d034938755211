package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) IssueToken(user *User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(tokenString string) (*Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Claims), args.Error(1)
}

func TestLoginHandler(t *testing.T) {
	mockService := new(MockAuthService)
	logger := slog.Default()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		body, _ := json.Marshal(LoginRequest{Username: "jason_admin", Password: "MyPass_w0rd"})

		req := httptest.NewRequest(http.MethodPost, "/api/Auth/JWT", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		mockService.On("Login", mock.Anything, "jason_admin", "MyPass_w0rd").
			Return("signed-token", nil).Once()

		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "signed-token", response.Token)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		body, _ := json.Marshal(LoginRequest{Username: "jason_admin", Password: "wrong"})

		req := httptest.NewRequest(http.MethodPost, "/api/Auth/JWT", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		mockService.On("Login", mock.Anything, "jason_admin", "wrong").
			Return("", ErrUnauthenticated).Once()

		handler.Login(w, req)

		// 404 rather than 401 on purpose, see the Login doc comment.
		assert.Equal(t, http.StatusNotFound, w.Code)

		var response string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "user not found", response)
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/Auth/JWT", bytes.NewReader(nil))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
