package handlers

import (
	"net/http"

	"littlelemon-api/config"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenuItems returns all menu items (public).
// Supports ?ordering=price|-price, ?category=<slug> and ?featured=true.
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Category")

	switch c.Query("ordering") {
	case "price":
		query = query.Order("price asc")
	case "-price":
		query = query.Order("price desc")
	}
	if slug := c.Query("category"); slug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.slug = ?", slug)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{
		"count":      len(items),
		"menu_items": items,
	})
}

// ListCategories returns all categories (public)
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}
