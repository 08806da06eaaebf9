package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkpicture/perfect-bites/models"
	"github.com/mkpicture/perfect-bites/utils"
)

type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// Quantity is a pointer so that an explicit 0 (meaning "remove the
// line") still passes binding.
type UpdateCartItemRequest struct {
	Quantity *int64 `json:"quantity" binding:"required"`
}

type CartLineResponse struct {
	ItemID             string `json:"item_id"`
	Name               string `json:"name"`
	UnitPrice          int64  `json:"unit_price"`
	UnitPriceFormatted string `json:"unit_price_formatted"`
	Quantity           int64  `json:"quantity"`
	LineTotal          int64  `json:"line_total"`
	LineTotalFormatted string `json:"line_total_formatted"`
}

type CartResponse struct {
	Lines               []CartLineResponse `json:"lines"`
	TotalItems          int64              `json:"total_items"`
	TotalPrice          int64              `json:"total_price"`
	TotalPriceFormatted string             `json:"total_price_formatted"`
}

func buildCartResponse(cart *models.Cart) CartResponse {
	lines := cart.Lines()

	resp := CartResponse{
		Lines:               make([]CartLineResponse, 0, len(lines)),
		TotalItems:          cart.TotalItems(),
		TotalPrice:          cart.TotalPrice(),
		TotalPriceFormatted: utils.FormatPrice(cart.TotalPrice()),
	}

	for _, line := range lines {
		lineTotal := line.Item.Price * line.Quantity
		resp.Lines = append(resp.Lines, CartLineResponse{
			ItemID:             line.Item.ID,
			Name:               line.Item.Name,
			UnitPrice:          line.Item.Price,
			UnitPriceFormatted: utils.FormatPrice(line.Item.Price),
			Quantity:           line.Quantity,
			LineTotal:          lineTotal,
			LineTotalFormatted: utils.FormatPrice(lineTotal),
		})
	}

	return resp
}

// GetCartHandler returns the session's cart with formatted prices.
func GetCartHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, buildCartResponse(sess.Cart))
}

// AddCartItemHandler puts one unit of a catalog item in the cart,
// merging into an existing line when the item is already there.
func AddCartItemHandler(c *gin.Context) {
	if DB == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database not initialized"})
		return
	}

	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	var request AddCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := DB.First(&item, "id = ?", request.ItemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}

		log.Println(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get menu item"})
		return
	}

	sess.Cart.AddItem(item)
	c.JSON(http.StatusOK, buildCartResponse(sess.Cart))
}

// UpdateCartItemHandler sets the quantity of a cart line. A quantity
// of zero or less removes the line.
func UpdateCartItemHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	var request UpdateCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.Cart.UpdateQuantity(c.Param("item_id"), *request.Quantity)
	c.JSON(http.StatusOK, buildCartResponse(sess.Cart))
}

// RemoveCartItemHandler drops a cart line. Removing an absent item is
// not an error; the cart simply stays as it was.
func RemoveCartItemHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	sess.Cart.RemoveItem(c.Param("item_id"))
	c.JSON(http.StatusOK, buildCartResponse(sess.Cart))
}

// ClearCartHandler empties the cart and puts the delivery draft back
// to defaults, dropping any captured coordinate with it.
func ClearCartHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	sess.Cart.Clear()
	sess.ResetDraft()
	c.JSON(http.StatusOK, buildCartResponse(sess.Cart))
}
