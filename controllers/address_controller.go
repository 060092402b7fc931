package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwhitfield/shopcore/config"
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/stores"
	"github.com/mwhitfield/shopcore/utils"
)

type AddressRequest struct {
	Address1  string `json:"address1" binding:"required"`
	Address2  string `json:"address2"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
	Country   string `json:"country" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// GetAddresses lists the authenticated user's addresses
func GetAddresses(c *gin.Context) {
	utils.LogInfo("GetAddresses called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	addresses, err := stores.NewAddressStore(config.DB).FindByUserID(userModel.ID)
	if err != nil {
		utils.LogError("Failed to fetch addresses for user ID: %d: %v", userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.Success(c, "Addresses fetched successfully", gin.H{"addresses": addresses})
}

// GetAddress fetches a single address owned by the authenticated user
func GetAddress(c *gin.Context) {
	utils.LogInfo("GetAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid address id", nil)
		return
	}

	address, err := stores.NewAddressStore(config.DB).FindByID(uint(addressID))
	if err != nil {
		utils.LogError("Failed to fetch address %d: %v", addressID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if address == nil || address.UserID != userModel.ID {
		utils.NotFound(c, "Address not found")
		return
	}

	utils.Success(c, "Address fetched successfully", gin.H{"address": address})
}

// AddAddress adds a new address for the user
func AddAddress(c *gin.Context) {
	utils.LogInfo("AddAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)
	utils.LogInfo("Processing address addition for user ID: %d", userModel.ID)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	// Business validation
	errs := utils.ValidateAddressFields(req.Address1, req.Address2, req.City, req.State, req.Zip, req.Country, req.FirstName, req.LastName)
	if len(errs) > 0 {
		utils.LogError("Address validation failed for user ID: %d: %v", userModel.ID, errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	// Auto-formatting: capitalize city, state, country
	req.City = utils.Title(strings.ToLower(strings.TrimSpace(req.City)))
	req.State = utils.Title(strings.ToLower(strings.TrimSpace(req.State)))
	req.Country = utils.Title(strings.ToLower(strings.TrimSpace(req.Country)))

	address, err := stores.NewAddressStore(config.DB).Create(&models.Address{
		Address1:  req.Address1,
		Address2:  req.Address2,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserID:    userModel.ID,
	})
	if err != nil {
		utils.LogError("Failed to add address for user ID: %d: %v", userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	utils.LogInfo("Address added successfully for user ID: %d, address ID: %d", userModel.ID, address.ID)
	utils.Created(c, "Address added successfully", gin.H{"address": address})
}

// EditAddress edits an existing address for the user
func EditAddress(c *gin.Context) {
	utils.LogInfo("EditAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid address id", nil)
		return
	}
	utils.LogInfo("Processing address edit for user ID: %d, address ID: %d", userModel.ID, addressID)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for user ID: %d: %v", userModel.ID, err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	store := stores.NewAddressStore(config.DB)
	address, err := store.FindByID(uint(addressID))
	if err != nil {
		utils.LogError("Failed to fetch address %d: %v", addressID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if address == nil || address.UserID != userModel.ID {
		utils.NotFound(c, "Address not found")
		return
	}

	errs := utils.ValidateAddressFields(req.Address1, req.Address2, req.City, req.State, req.Zip, req.Country, req.FirstName, req.LastName)
	if len(errs) > 0 {
		utils.LogError("Address validation failed for user ID: %d: %v", userModel.ID, errs)
		utils.BadRequest(c, "Validation failed", gin.H{"fields": errs})
		return
	}

	address.Address1 = req.Address1
	address.Address2 = req.Address2
	address.City = utils.Title(strings.ToLower(strings.TrimSpace(req.City)))
	address.State = utils.Title(strings.ToLower(strings.TrimSpace(req.State)))
	address.Zip = req.Zip
	address.Country = utils.Title(strings.ToLower(strings.TrimSpace(req.Country)))
	address.FirstName = req.FirstName
	address.LastName = req.LastName

	updated, err := store.Update(address)
	if err != nil {
		utils.LogError("Failed to update address for user ID: %d: %v", userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if updated == nil {
		utils.NotFound(c, "Address not found")
		return
	}

	utils.LogInfo("Address updated successfully for user ID: %d, address ID: %d", userModel.ID, updated.ID)
	utils.Success(c, "Address updated successfully", gin.H{"address": updated})
}

// DeleteAddress deletes an address for the user
func DeleteAddress(c *gin.Context) {
	utils.LogInfo("DeleteAddress called")

	user, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found in context")
		return
	}
	userModel := user.(models.User)

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid address id", nil)
		return
	}
	utils.LogInfo("Processing address deletion for user ID: %d, address ID: %d", userModel.ID, addressID)

	store := stores.NewAddressStore(config.DB)
	address, err := store.FindByID(uint(addressID))
	if err != nil {
		utils.LogError("Failed to fetch address %d: %v", addressID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if address == nil || address.UserID != userModel.ID {
		utils.NotFound(c, "Address not found or already deleted")
		return
	}

	deleted, err := store.Delete(address.ID)
	if err != nil {
		utils.LogError("Failed to delete address for user ID: %d: %v", userModel.ID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if deleted == nil {
		utils.NotFound(c, "Address not found or already deleted")
		return
	}

	utils.LogInfo("Address deleted successfully for user ID: %d, address ID: %d", userModel.ID, deleted.ID)
	utils.Success(c, "Address deleted successfully", gin.H{"address": deleted})
}
