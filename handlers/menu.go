package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkpicture/perfect-bites/models"
)

// ListCategoriesHandler returns the fixed category set.
func ListCategoriesHandler(c *gin.Context) {
	if DB == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database not initialized"})
		return
	}

	var categories []models.Category
	if err := DB.Find(&categories).Error; err != nil {
		log.Println(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories"})
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

// GetMenuHandler returns the menu, optionally filtered with
// ?category=<id>. An unknown category yields an empty list.
func GetMenuHandler(c *gin.Context) {
	if DB == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database not initialized"})
		return
	}

	query := DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		log.Println(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get menu items"})
		return
	}

	if items == nil {
		items = []models.MenuItem{}
	}

	c.JSON(http.StatusOK, items)
}

// GetMenuItemHandler returns a single menu item by id.
func GetMenuItemHandler(c *gin.Context) {
	if DB == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database not initialized"})
		return
	}

	itemID := c.Param("item_id")

	var item models.MenuItem
	if err := DB.First(&item, "id = ?", itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}

		log.Println(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get menu item"})
		return
	}

	c.JSON(http.StatusOK, item)
}
