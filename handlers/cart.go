package handlers

import (
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/middleware"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	MenuItemID uint `json:"menuitem" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// GetCart returns the caller's cart lines in insertion order
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var lines []models.Cart
	config.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lines)
	c.JSON(http.StatusOK, gin.H{"count": len(lines), "cart": lines})
}

// AddToCart appends a line to the caller's cart, snapshotting the menu
// item's current price as the line's unit price.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
		return
	}

	line := models.Cart{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   req.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}
	if err := config.DB.Create(&line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	config.DB.Preload("MenuItem").First(&line, line.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Added to cart", "line": line})
}

// ClearCart deletes all of the caller's cart lines; clearing an already
// empty cart succeeds.
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.Cart{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
