package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodinfo/internal/controllers"
	"foodinfo/internal/models"
	"foodinfo/internal/permissions"
	"foodinfo/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFridgeController() (*controllers.FridgeController, *mocks.MockFridgeRepository) {
	mockRepo := new(mocks.MockFridgeRepository)
	controller := controllers.NewFridgeController(mockRepo)
	return controller, mockRepo
}

func TestListFridgesScopedToOwner(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		isStaff       bool
		expectedActor permissions.Actor
		returned      int
	}{
		{"user sees only own fridges", 2, false, permissions.Actor{ID: 2}, 1},
		{"staff sees every fridge", 1, true, permissions.Actor{ID: 1, IsStaff: true}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupFridgeController()
			fridges := make([]models.Fridge, tt.returned)
			for i := range fridges {
				fridges[i] = models.Fridge{ID: uint(i + 1), Name: "kitchen", UserID: 2}
			}
			mockRepo.On("FindVisible", tt.expectedActor).Return(fridges, nil)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID, tt.isStaff))
			router.GET("/fridge", controller.ListFridges)

			req := httptest.NewRequest(http.MethodGet, "/fridge", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			data := decodeResponse(t, w)["data"].([]interface{})
			assert.Len(t, data, tt.returned)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateFridgeSetsOwner(t *testing.T) {
	controller, mockRepo := setupFridgeController()
	mockRepo.On("Create", mock.MatchedBy(func(fridge *models.Fridge) bool {
		return fridge.UserID == 4 && fridge.Name == "garage"
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(4, false))
	router.POST("/fridge", controller.CreateFridge)

	body, _ := json.Marshal(map[string]interface{}{"name": "garage", "user_id": 99})
	req := httptest.NewRequest(http.MethodPost, "/fridge", bytesReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetFridgeOwnership(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		isStaff        bool
		expectedStatus int
	}{
		{"owner reads own fridge", 2, false, http.StatusOK},
		{"staff reads any fridge", 9, true, http.StatusOK},
		{"other user denied", 3, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupFridgeController()
			mockRepo.On("FindByID", uint(1)).Return(&models.Fridge{
				ID:     1,
				Name:   "kitchen",
				UserID: 2,
				Shelf:  []models.Ingredient{{ID: 5, Name: "carrot"}},
			}, nil)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID, tt.isStaff))
			router.GET("/fridge/:id", controller.GetFridgeByID)

			req := httptest.NewRequest(http.MethodGet, "/fridge/1", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSetShelfReplacesContents(t *testing.T) {
	controller, mockRepo := setupFridgeController()
	fridge := &models.Fridge{ID: 1, Name: "kitchen", UserID: 2}
	mockRepo.On("FindByID", uint(1)).Return(fridge, nil)
	mockRepo.On("SetShelf", fridge, []uint{3, 5, 8}).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(2, false))
	router.PUT("/fridge/:id/shelf", controller.SetShelf)

	body, _ := json.Marshal(map[string]interface{}{"ingredient_ids": []uint{3, 5, 8}})
	req := httptest.NewRequest(http.MethodPut, "/fridge/1/shelf", bytesReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestSetShelfForbiddenForNonOwner(t *testing.T) {
	controller, mockRepo := setupFridgeController()
	mockRepo.On("FindByID", uint(1)).Return(&models.Fridge{ID: 1, Name: "kitchen", UserID: 2}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(3, false))
	router.PUT("/fridge/:id/shelf", controller.SetShelf)

	body, _ := json.Marshal(map[string]interface{}{"ingredient_ids": []uint{3}})
	req := httptest.NewRequest(http.MethodPut, "/fridge/1/shelf", bytesReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockRepo.AssertNotCalled(t, "SetShelf")
}

func TestDeleteFridge(t *testing.T) {
	controller, mockRepo := setupFridgeController()
	mockRepo.On("FindByID", uint(1)).Return(&models.Fridge{ID: 1, Name: "kitchen", UserID: 2}, nil)
	mockRepo.On("Delete", uint(1)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(2, false))
	router.DELETE("/fridge/:id", controller.DeleteFridge)

	req := httptest.NewRequest(http.MethodDelete, "/fridge/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
