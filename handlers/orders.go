package handlers

import (
	"net/http"
	"time"

	"littlelemon-api/config"
	"littlelemon-api/middleware"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlaceOrder converts the caller's cart into an order. Order creation, item
// snapshots and the cart wipe run in one transaction: either the whole order
// exists and the cart is empty, or nothing changed.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var lines []models.Cart
	if err := config.DB.Where("user_id = ?", userID).Order("id asc").Find(&lines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}

	order := models.Order{
		UserID: userID,
		Status: false,
		Total:  total,
		Date:   time.Now(),
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range lines {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns the caller's own orders
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AssignOrder assigns an order to a delivery crew member (manager only).
// Re-assigning an already-assigned order is allowed; status is untouched.
func AssignOrder(c *gin.Context) {
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
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	ok, err := models.UserHasRole(config.DB, user.ID, models.RoleDeliveryCrew)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role membership"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": req.Username + " is not in delivery crew"})
		return
	}

	if err := config.DB.Model(&order).Update("delivery_crew_id", user.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order assigned to " + req.Username,
		"order_id": order.ID,
	})
}
