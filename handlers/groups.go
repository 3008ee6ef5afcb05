package handlers

import (
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
)

type GroupUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// addUserToRole resolves the target user and appends the role membership.
// Appending an existing membership is a no-op, so the operation is idempotent.
func addUserToRole(c *gin.Context, roleName models.RoleName, successStatus int) {
	var req GroupUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var role models.Role
	if err := config.DB.Where("name = ?", roleName).First(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Role not found"})
		return
	}

	if err := config.DB.Model(&user).Association("Roles").Append(&role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role membership"})
		return
	}
	c.JSON(successStatus, gin.H{"message": req.Username + " added to " + string(roleName) + " group"})
}

// removeUserFromRole is symmetric; removing a non-member is a no-op success.
func removeUserFromRole(c *gin.Context, roleName models.RoleName) {
	var req GroupUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	var role models.Role
	if err := config.DB.Where("name = ?", roleName).First(&role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Role not found"})
		return
	}

	if err := config.DB.Model(&user).Association("Roles").Delete(&role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role membership"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": req.Username + " removed from " + string(roleName) + " group"})
}

// AddManagerUser adds a user to the manager group (admin only)
func AddManagerUser(c *gin.Context) {
	addUserToRole(c, models.RoleManager, http.StatusCreated)
}

// RemoveManagerUser removes a user from the manager group (admin only)
func RemoveManagerUser(c *gin.Context) {
	removeUserFromRole(c, models.RoleManager)
}

// AddDeliveryCrewUser adds a user to the delivery crew (manager only)
func AddDeliveryCrewUser(c *gin.Context) {
	addUserToRole(c, models.RoleDeliveryCrew, http.StatusOK)
}

// RemoveDeliveryCrewUser removes a user from the delivery crew (manager only).
// Existing order assignments are not touched.
func RemoveDeliveryCrewUser(c *gin.Context) {
	removeUserFromRole(c, models.RoleDeliveryCrew)
}
