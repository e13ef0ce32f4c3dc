package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodinfo/internal/controllers"
	"foodinfo/internal/models"
	"foodinfo/internal/query"
	"foodinfo/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRecipeController() (*controllers.RecipeController, *mocks.MockRecipeRepository, *mocks.MockFridgeRepository) {
	mockRepo := new(mocks.MockRecipeRepository)
	mockFridgeRepo := new(mocks.MockFridgeRepository)
	controller := controllers.NewRecipeController(mockRepo, mockFridgeRepo, nil)
	return controller, mockRepo, mockFridgeRepo
}

func sampleRecipes() []models.Recipe {
	calories := 320.0
	return []models.Recipe{
		{
			ID:       1,
			Title:    "carrot soup",
			AuthorID: 2,
			Calories: &calories,
			Tags:     []models.Tag{{ID: 5, Label: "vegan"}},
		},
	}
}

func TestSearchRecipesValidation(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectedMsg string
	}{
		{
			name:        "inverted calorie range",
			url:         "/recipes?caloriesAbove=500&caloriesBelow=100",
			expectedMsg: "Invalid search parameters",
		},
		{
			name:        "absent limit without source",
			url:         "/recipes?absentLimit=2",
			expectedMsg: "Invalid search parameters",
		},
		{
			name:        "non numeric calorie bound",
			url:         "/recipes?caloriesAbove=abc",
			expectedMsg: "Invalid search parameters",
		},
		{
			name:        "malformed ingredient list",
			url:         "/recipes?ingredients=1,x",
			expectedMsg: "Invalid search parameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _ := setupRecipeController()

			router := setupTestRouter()
			router.GET("/recipes", controller.SearchRecipes)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.expectedMsg, decodeResponse(t, w)["message"])
			mockRepo.AssertNotCalled(t, "Search")
		})
	}
}

func TestSearchRecipesFridgeOwnership(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		anonymous      bool
		setupMock      func(*mocks.MockFridgeRepository)
		expectedStatus int
	}{
		{
			name:   "fridge not found",
			userID: 1,
			setupMock: func(m *mocks.MockFridgeRepository) {
				m.On("FindByID", uint(4)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "fridge owned by someone else",
			userID: 1,
			setupMock: func(m *mocks.MockFridgeRepository) {
				m.On("FindByID", uint(4)).Return(&models.Fridge{ID: 4, UserID: 2}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "anonymous caller",
			anonymous: true,
			setupMock: func(m *mocks.MockFridgeRepository) {
				m.On("FindByID", uint(4)).Return(&models.Fridge{ID: 4, UserID: 2}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "owner searches own fridge",
			userID: 2,
			setupMock: func(m *mocks.MockFridgeRepository) {
				m.On("FindByID", uint(4)).Return(&models.Fridge{ID: 4, UserID: 2}, nil)
				m.On("ShelfIngredientIDs", uint(4)).Return([]uint{1, 2, 3}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, mockFridgeRepo := setupRecipeController()
			tt.setupMock(mockFridgeRepo)
			if tt.expectedStatus == http.StatusOK {
				mockRepo.On("Search", mock.AnythingOfType("*query.RecipeFilter"), []uint{1, 2, 3}).
					Return(sampleRecipes(), nil)
			}

			router := setupTestRouter()
			if !tt.anonymous {
				router.Use(addAuthMiddleware(tt.userID, false))
			}
			router.GET("/recipes", controller.SearchRecipes)

			req := httptest.NewRequest(http.MethodGet, "/recipes?fridgeId=4", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				mockRepo.AssertNotCalled(t, "Search")
			}
		})
	}
}

func TestSearchRecipesPassesParsedFilter(t *testing.T) {
	controller, mockRepo, _ := setupRecipeController()

	mockRepo.On("Search", mock.MatchedBy(func(filter *query.RecipeFilter) bool {
		return filter.Title == "soup" &&
			filter.AbsentLimit != nil && *filter.AbsentLimit == 1 &&
			len(filter.IngredientIDs) == 2
	}), []uint(nil)).Return(sampleRecipes(), nil)

	router := setupTestRouter()
	router.GET("/recipes", controller.SearchRecipes)

	req := httptest.NewRequest(http.MethodGet, "/recipes?title=soup&ingredients=1,2&absentLimit=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestSearchRecipesProjection(t *testing.T) {
	t.Run("full projection by default", func(t *testing.T) {
		controller, mockRepo, _ := setupRecipeController()
		mockRepo.On("Search", mock.AnythingOfType("*query.RecipeFilter"), []uint(nil)).
			Return(sampleRecipes(), nil)

		router := setupTestRouter()
		router.GET("/recipes", controller.SearchRecipes)

		req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		response := decodeResponse(t, w)
		data, ok := response["data"].([]interface{})
		require.True(t, ok)
		require.Len(t, data, 1)

		recipe := data[0].(map[string]interface{})
		assert.Contains(t, recipe, "calories")
		assert.Contains(t, recipe, "instructions")
		assert.Contains(t, recipe, "proteins")
		assert.Nil(t, recipe["proteins"])
	})

	t.Run("compact projection with expanded=false", func(t *testing.T) {
		controller, mockRepo, _ := setupRecipeController()
		mockRepo.On("Search", mock.AnythingOfType("*query.RecipeFilter"), []uint(nil)).
			Return(sampleRecipes(), nil)

		router := setupTestRouter()
		router.GET("/recipes", controller.SearchRecipes)

		req := httptest.NewRequest(http.MethodGet, "/recipes?expanded=false", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		response := decodeResponse(t, w)
		data := response["data"].([]interface{})
		require.Len(t, data, 1)

		recipe := data[0].(map[string]interface{})
		assert.Len(t, recipe, 5)
		for _, field := range []string{"id", "title", "thumbnail", "author", "tags"} {
			assert.Contains(t, recipe, field)
		}
		assert.NotContains(t, recipe, "calories")
	})
}

func TestSearchRecipesRepositoryError(t *testing.T) {
	controller, mockRepo, _ := setupRecipeController()
	mockRepo.On("Search", mock.AnythingOfType("*query.RecipeFilter"), []uint(nil)).
		Return(nil, errors.New("database error"))

	router := setupTestRouter()
	router.GET("/recipes", controller.SearchRecipes)

	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetRecipeByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		controller, mockRepo, _ := setupRecipeController()
		recipes := sampleRecipes()
		mockRepo.On("FindByID", uint(1)).Return(&recipes[0], nil)

		router := setupTestRouter()
		router.GET("/recipes/:id", controller.GetRecipeByID)

		req := httptest.NewRequest(http.MethodGet, "/recipes/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		recipe := decodeResponse(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "carrot soup", recipe["title"])
	})

	t.Run("not found", func(t *testing.T) {
		controller, mockRepo, _ := setupRecipeController()
		mockRepo.On("FindByID", uint(100)).Return(nil, errors.New("record not found"))

		router := setupTestRouter()
		router.GET("/recipes/:id", controller.GetRecipeByID)

		req := httptest.NewRequest(http.MethodGet, "/recipes/100", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateRecipeSetsAuthor(t *testing.T) {
	controller, mockRepo, _ := setupRecipeController()
	mockRepo.On("Create", mock.MatchedBy(func(recipe *models.Recipe) bool {
		return recipe.AuthorID == 7 && recipe.Title == "bread"
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(7, false))
	router.POST("/recipes", controller.CreateRecipe)

	body, _ := json.Marshal(map[string]interface{}{"title": "bread", "author_id": 99})
	req := httptest.NewRequest(http.MethodPost, "/recipes", bytesReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeleteRecipeOwnership(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		isStaff        bool
		expectedStatus int
	}{
		{"author deletes own", 2, false, http.StatusOK},
		{"staff deletes any", 9, true, http.StatusOK},
		{"other user denied", 3, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _ := setupRecipeController()
			recipes := sampleRecipes()
			mockRepo.On("FindByID", uint(1)).Return(&recipes[0], nil)
			if tt.expectedStatus == http.StatusOK {
				mockRepo.On("Delete", uint(1)).Return(nil)
			}

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID, tt.isStaff))
			router.DELETE("/recipes/:id", controller.DeleteRecipe)

			req := httptest.NewRequest(http.MethodDelete, "/recipes/1", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusForbidden {
				mockRepo.AssertNotCalled(t, "Delete")
			}
		})
	}
}

type failingSearchCache struct{}

func (failingSearchCache) GetSearch(string) (json.RawMessage, bool) { return nil, false }

func (failingSearchCache) StoreSearch(string, json.RawMessage, time.Duration) error {
	return errors.New("redis down")
}

func TestSearchRecipesCacheWriteFailureIsNonFatal(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	mockFridgeRepo := new(mocks.MockFridgeRepository)
	controller := controllers.NewRecipeController(mockRepo, mockFridgeRepo, failingSearchCache{})
	mockRepo.On("Search", mock.Anything, mock.Anything).Return(sampleRecipes(), nil)

	router := setupTestRouter()
	router.GET("/recipes", controller.SearchRecipes)

	req := httptest.NewRequest(http.MethodGet, "/recipes?title=carrot", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)
}
