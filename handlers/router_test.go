package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mkpicture/perfect-bites/models"
)

// setupRouter wires a fresh in-memory database, a fresh session store
// and the same routes main mounts.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.MenuItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := models.SeedCatalog(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	DB = db
	Sessions = models.NewSessionStore()

	router := gin.New()

	publicGroup := router.Group("/public")
	publicGroup.GET("/categories", ListCategoriesHandler)
	publicGroup.GET("/menu", GetMenuHandler)
	publicGroup.GET("/menu/:item_id", GetMenuItemHandler)

	sessionRoutes := router.Group("", SessionMiddleware())
	sessionRoutes.GET("/cart", GetCartHandler)
	sessionRoutes.DELETE("/cart", ClearCartHandler)
	sessionRoutes.POST("/cart/items", AddCartItemHandler)
	sessionRoutes.PUT("/cart/items/:item_id", UpdateCartItemHandler)
	sessionRoutes.DELETE("/cart/items/:item_id", RemoveCartItemHandler)
	sessionRoutes.GET("/delivery", GetDeliveryHandler)
	sessionRoutes.PUT("/delivery", UpdateDeliveryHandler)
	sessionRoutes.GET("/delivery/location", GetLocationHandler)
	sessionRoutes.POST("/delivery/location/request", RequestLocationHandler)
	sessionRoutes.POST("/delivery/location/result", ReportLocationHandler)
	sessionRoutes.POST("/checkout", CheckoutHandler)

	return router
}

// doJSON fires a request with an optional JSON body and a fixed session
// id, and decodes the JSON response into out when out is non-nil.
func doJSON(t *testing.T, router *gin.Engine, method, path, sessionID string, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w
}
