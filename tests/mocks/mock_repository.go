package mocks

import (
	"foodinfo/internal/models"
	"foodinfo/internal/permissions"
	"foodinfo/internal/query"

	"github.com/stretchr/testify/mock"
)

// Shared MockIngredientRepository
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ingredient *models.Ingredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) FindByID(id uint) (*models.Ingredient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindVisible(actor permissions.Actor, name string) ([]models.Ingredient, error) {
	args := m.Called(actor, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) Update(ingredient *models.Ingredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockMeasureRepository
type MockMeasureRepository struct {
	mock.Mock
}

func (m *MockMeasureRepository) Create(measure *models.Measure) error {
	args := m.Called(measure)
	return args.Error(0)
}

func (m *MockMeasureRepository) FindAll(name string) ([]models.Measure, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Measure), args.Error(1)
}

func (m *MockMeasureRepository) FindByID(id uint) (*models.Measure, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Measure), args.Error(1)
}

func (m *MockMeasureRepository) Update(measure *models.Measure) error {
	args := m.Called(measure)
	return args.Error(0)
}

func (m *MockMeasureRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockConversionRepository
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) Create(conversion *models.UtensilConversion) error {
	args := m.Called(conversion)
	return args.Error(0)
}

func (m *MockConversionRepository) FindAll() ([]models.UtensilConversion, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UtensilConversion), args.Error(1)
}

func (m *MockConversionRepository) FindByID(id uint) (*models.UtensilConversion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UtensilConversion), args.Error(1)
}

func (m *MockConversionRepository) FindByPair(utensilID, ingredientID uint) (*models.UtensilConversion, error) {
	args := m.Called(utensilID, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UtensilConversion), args.Error(1)
}

func (m *MockConversionRepository) Update(conversion *models.UtensilConversion) error {
	args := m.Called(conversion)
	return args.Error(0)
}

func (m *MockConversionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockFridgeRepository
type MockFridgeRepository struct {
	mock.Mock
}

func (m *MockFridgeRepository) Create(fridge *models.Fridge) error {
	args := m.Called(fridge)
	return args.Error(0)
}

func (m *MockFridgeRepository) FindByID(id uint) (*models.Fridge, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Fridge), args.Error(1)
}

func (m *MockFridgeRepository) FindVisible(actor permissions.Actor) ([]models.Fridge, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Fridge), args.Error(1)
}

func (m *MockFridgeRepository) Update(fridge *models.Fridge) error {
	args := m.Called(fridge)
	return args.Error(0)
}

func (m *MockFridgeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFridgeRepository) SetShelf(fridge *models.Fridge, ingredientIDs []uint) error {
	args := m.Called(fridge, ingredientIDs)
	return args.Error(0)
}

func (m *MockFridgeRepository) ShelfIngredientIDs(fridgeID uint) ([]uint, error) {
	args := m.Called(fridgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(id uint) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Search(filter *query.RecipeFilter, shelf []uint) ([]models.Recipe, error) {
	args := m.Called(filter, shelf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindAll() ([]models.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByID(id uint) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Update(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTagRepository) CreateCategory(category *models.TagCategory) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockTagRepository) FindAllCategories() ([]models.TagCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TagCategory), args.Error(1)
}

func (m *MockTagRepository) FindCategoryByID(id uint) (*models.TagCategory, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TagCategory), args.Error(1)
}

func (m *MockTagRepository) DeleteCategory(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
