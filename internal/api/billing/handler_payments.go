package billing

import (
	"net/http"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Preload("PointPack").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// ListPointPacks is the public catalog the purchase page renders.
func ListPointPacks(c *gin.Context) {
	var packs []billing.PointPack
	if err := database.DB.Order("points ASC").Find(&packs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load point packs"})
		return
	}
	c.JSON(http.StatusOK, packs)
}
