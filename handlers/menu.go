package handlers

import (
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateMenuItemRequest struct {
	Title    string          `json:"title" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category uint            `json:"category" binding:"required"`
}

type FeaturedRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

// CreateMenuItem creates a menu item. Any authenticated user may call this,
// mirroring the upstream permission policy (see DESIGN.md).
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive decimal"})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.Category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	item := models.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: category.ID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	config.DB.Preload("Category").First(&item, item.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "menu_item": item})
}

// UpdateFeatured sets the item-of-the-day flag (manager only)
func UpdateFeatured(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req FeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing featured field"})
		return
	}

	if err := config.DB.Model(&item).Update("featured", *req.Featured).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  item.Title + " updated",
		"featured": *req.Featured,
	})
}
