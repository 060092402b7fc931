package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mwhitfield/shopcore/config"
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/services"
	"github.com/mwhitfield/shopcore/stores"
	"github.com/mwhitfield/shopcore/utils"
)

func paymentService() *services.PaymentService {
	return services.NewPaymentService(
		stores.NewCardStore(config.DB),
		stores.NewUserStore(config.DB),
	)
}

// PostPayment creates a new payment method for the authenticated user
func PostPayment(c *gin.Context) {
	utils.LogInfo("PostPayment called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	var req services.PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	req.UserID = userModel.ID

	payment, err := paymentService().PostPayment(&req)
	if err != nil {
		utils.LogError("Failed to create payment for user ID: %d: %v", userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.LogInfo("Payment created successfully for user ID: %d, payment ID: %d", userModel.ID, payment.ID)
	utils.Created(c, "Payment method added successfully", gin.H{"payment": payment})
}

// GetPayment fetches one payment method owned by the authenticated user
func GetPayment(c *gin.Context) {
	utils.LogInfo("GetPayment called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid payment id", nil)
		return
	}

	payment, err := paymentService().GetPayment(userModel.ID, uint(paymentID))
	if err != nil {
		utils.LogError("Failed to fetch payment %d for user ID: %d: %v", paymentID, userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.Success(c, "Payment method fetched successfully", gin.H{"payment": payment})
}

// PutPayment updates a payment method owned by the authenticated user
func PutPayment(c *gin.Context) {
	utils.LogInfo("PutPayment called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid payment id", nil)
		return
	}

	var req services.PaymentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	req.UserID = userModel.ID
	req.PaymentID = uint(paymentID)

	payment, err := paymentService().PutPayment(&req)
	if err != nil {
		utils.LogError("Failed to update payment %d for user ID: %d: %v", paymentID, userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.LogInfo("Payment %d updated successfully for user ID: %d", payment.ID, userModel.ID)
	utils.Success(c, "Payment method updated successfully", gin.H{"payment": payment})
}

// DeletePayment removes a payment method owned by the authenticated user
func DeletePayment(c *gin.Context) {
	utils.LogInfo("DeletePayment called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid payment id", nil)
		return
	}

	payment, err := paymentService().DeletePayment(userModel.ID, uint(paymentID))
	if err != nil {
		utils.LogError("Failed to delete payment %d for user ID: %d: %v", paymentID, userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.LogInfo("Payment %d deleted successfully for user ID: %d", paymentID, userModel.ID)
	utils.Success(c, "Payment method deleted successfully", gin.H{"payment": payment})
}

// GetAllPayments lists every payment method the authenticated user owns
func GetAllPayments(c *gin.Context) {
	utils.LogInfo("GetAllPayments called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	payments, err := paymentService().GetAllPayments(userModel.ID)
	if err != nil {
		utils.LogError("Failed to fetch payments for user ID: %d: %v", userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.Success(c, "Payment methods fetched successfully", gin.H{"payments": payments})
}
