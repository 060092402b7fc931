package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/mwhitfield/shopcore/config"
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/stores"
	"github.com/mwhitfield/shopcore/utils"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register creates a new user account
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	errs := []utils.FieldValidationError{}
	if !utils.ValidateUsername(req.Username) {
		errs = append(errs, utils.FieldValidationError{Field: "username", Message: "Username must be 3-20 characters (letters, digits, underscore)"})
	}
	if !utils.ValidateEmail(req.Email) {
		errs = append(errs, utils.FieldValidationError{Field: "email", Message: "Email format is invalid"})
	}
	if len(req.Password) < 8 {
		errs = append(errs, utils.FieldValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if len(errs) > 0 {
		utils.LogError("Registration validation failed: %v", errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	userStore := stores.NewUserStore(config.DB)
	existing, err := userStore.FindByEmail(req.Email)
	if err != nil {
		utils.LogError("Failed to check existing user: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}
	if existing != nil {
		utils.Conflict(c, "Email already registered", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to create user", nil)
		return
	}

	user, err := userStore.Create(&models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.LogInfo("User registered successfully, user ID: %d", user.ID)
	utils.Created(c, "User registered successfully", gin.H{"user": user})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	userStore := stores.NewUserStore(config.DB)
	user, err := userStore.FindByEmail(req.Email)
	if err != nil {
		utils.LogError("Failed to look up user: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}
	if user == nil || !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Invalid credentials for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User %d logged in successfully", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}
