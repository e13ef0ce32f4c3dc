package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodinfo/internal/controllers"
	"foodinfo/internal/models"
	"foodinfo/tests/mocks"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthController() (*controllers.AuthController, *mocks.MockUserRepository) {
	mockRepo := new(mocks.MockUserRepository)
	controller := controllers.NewAuthController(mockRepo)
	return controller, mockRepo
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     map[string]interface{}
		setupMock       func(*mocks.MockUserRepository)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:        "successful registration",
			requestBody: map[string]interface{}{"username": "alice", "password": "hunter2hunter2"},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("Create", mock.MatchedBy(func(user *models.User) bool {
					// The stored password must be a hash, never the plaintext.
					return user.Username == "alice" && user.Password != "hunter2hunter2"
				})).Return(nil)
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "User registered successfully",
		},
		{
			name:        "username taken",
			requestBody: map[string]interface{}{"username": "alice", "password": "hunter2hunter2"},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("Create", mock.Anything).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Username already taken",
		},
		{
			name:            "password too short",
			requestBody:     map[string]interface{}{"username": "alice", "password": "short"},
			setupMock:       func(m *mocks.MockUserRepository) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request data",
		},
		{
			name:            "missing username",
			requestBody:     map[string]interface{}{"password": "hunter2hunter2"},
			setupMock:       func(m *mocks.MockUserRepository) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/register", controller.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytesReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMessage, decodeResponse(t, w)["message"])
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRegisterNeverEchoesPassword(t *testing.T) {
	controller, mockRepo := setupAuthController()
	mockRepo.On("Create", mock.Anything).Return(nil)

	router := setupTestRouter()
	router.POST("/auth/register", controller.Register)

	body, _ := json.Marshal(map[string]interface{}{"username": "alice", "password": "hunter2hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytesReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.NotContains(t, data, "password")
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name:        "valid credentials",
			requestBody: map[string]interface{}{"username": "alice", "password": "hunter2hunter2"},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByUsername", "alice").Return(&models.User{
					ID:       1,
					Username: "alice",
					Password: string(hash),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "wrong password",
			requestBody: map[string]interface{}{"username": "alice", "password": "wrongwrongwrong"},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByUsername", "alice").Return(&models.User{
					ID:       1,
					Username: "alice",
					Password: string(hash),
				}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "unknown user",
			requestBody: map[string]interface{}{"username": "mallory", "password": "hunter2hunter2"},
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("FindByUsername", "mallory").Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/login", controller.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytesReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				data := decodeResponse(t, w)["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}
		})
	}
}
