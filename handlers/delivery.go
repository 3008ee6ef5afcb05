package handlers

import (
	"errors"
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/middleware"
	"littlelemon-api/models"
	"littlelemon-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetDeliveryOrders returns the orders assigned to the logged-in crew member
func GetDeliveryOrders(c *gin.Context) {
	crewID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").
		Where("delivery_crew_id = ?", crewID).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// MarkDelivered flips an assigned order to delivered. Repeating the call on
// an already-delivered order is a no-op success.
func MarkDelivered(c *gin.Context) {
	crewID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	switch err := statemachine.CanMarkDelivered(&order, crewID); {
	case errors.Is(err, statemachine.ErrNotAssigned):
		c.JSON(http.StatusForbidden, gin.H{"error": "This order is not assigned to you"})
		return
	case errors.Is(err, statemachine.ErrAlreadyDelivered):
		c.JSON(http.StatusOK, gin.H{
			"message":  "Order already delivered",
			"order_id": order.ID,
			"status":   statemachine.StatusDelivered,
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order marked as delivered",
		"order_id": order.ID,
		"status":   statemachine.StatusDelivered,
	})
}
