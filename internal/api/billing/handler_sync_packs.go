package billing

import (
	"net/http"
	"os"
	"strconv"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

// SyncPointPacksFromStripe mirrors active one-time Stripe prices into the
// point_packs table. The points value comes from the price metadata key
// "points"; prices without it are skipped.
func SyncPointPacksFromStripe(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	targetProductID := os.Getenv("STRIPE_POINTS_PRODUCT_ID")

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("one_time")
	params.AddExpand("data.product")

	it := price.List(params)

	synced := 0
	created := 0
	updated := 0
	skipped := 0

	for it.Next() {
		p := it.Price()

		if !p.Active || p.Product == nil || !p.Product.Active {
			skipped++
			continue
		}

		if targetProductID != "" && p.Product.ID != targetProductID {
			skipped++
			continue
		}

		if string(p.Currency) != "eur" {
			skipped++
			continue
		}

		if p.Metadata != nil && p.Metadata["visible"] == "false" {
			skipped++
			continue
		}

		points := 0
		if p.Metadata != nil {
			if v := p.Metadata["points"]; v != "" {
				points, _ = strconv.Atoi(v)
			}
		}
		if points <= 0 {
			skipped++
			continue
		}

		amount := float64(p.UnitAmount) / 100.0

		displayName := p.Product.Name
		if p.Metadata != nil {
			if v := p.Metadata["pack"]; v != "" {
				displayName = v
			}
		}

		var existing billing.PointPack
		err := database.DB.Where("stripe_price_id = ?", p.ID).First(&existing).Error

		if err != nil {
			pack := billing.PointPack{
				Name:          displayName,
				Points:        points,
				PriceEUR:      amount,
				StripePriceID: p.ID,
			}
			if err := database.DB.Create(&pack).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create point pack", "details": err.Error()})
				return
			}
			created++
		} else {
			existing.Name = displayName
			existing.Points = points
			existing.PriceEUR = amount

			if err := database.DB.Save(&existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update point pack", "details": err.Error()})
				return
			}
			updated++
		}

		synced++
	}

	if err := it.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch Stripe prices", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"synced":  synced,
		"created": created,
		"updated": updated,
		"skipped": skipped,
	})
}
