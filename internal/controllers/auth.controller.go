package controllers

import (
	"net/http"
	"os"
	"time"

	"foodinfo/internal/models"
	"foodinfo/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	repo repository.UserRepository
}

func NewAuthController(repo repository.UserRepository) *AuthController {
	return &AuthController{repo: repo}
}

type credentials struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required,min=8" example:"hunter2hunter2"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with a username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentials true "Account credentials"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or username taken"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{Username: creds.Username, Password: string(hash)}
	if err := ac.repo.Create(&user); err != nil {
		if isPgError(err, pgUniqueViolation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Username already taken",
				"error":   "A user with this username already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    user,
	})
}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentials true "Account credentials"
// @Success 200 {object} map[string]interface{} "Token issued"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := ac.repo.FindByUsername(creds.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Username or password is incorrect",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Username or password is incorrect",
		})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_staff": user.IsStaff,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data":    gin.H{"token": signed},
	})
}
