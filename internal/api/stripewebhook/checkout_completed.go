package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/billing"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/membership"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
	infrastripe "github.com/eklipse1999/dating-platform-sub000/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"gorm.io/gorm"
)

func handleCheckoutSessionCompleted(c *gin.Context, session *stripe.CheckoutSession) error {
	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("line_items"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.LineItems == nil || len(fullSession.LineItems.Data) == 0 || fullSession.LineItems.Data[0].Price == nil {
		return errors.New("checkout session missing line items")
	}

	userID, err := userIDFromSessionOrRef(fullSession)
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	// Map Stripe price -> point pack
	priceID := fullSession.LineItems.Data[0].Price.ID
	var pack billing.PointPack
	if err := database.DB.Where("stripe_price_id = ?", priceID).First(&pack).Error; err != nil {
		return fmt.Errorf("point pack not found for stripe price_id=%s: %w", priceID, err)
	}

	status := string(fullSession.PaymentStatus)

	// Credit the points and rewrite tier in the SAME transaction so tier can
	// never go stale relative to points. The payment row's unique session ID
	// makes webhook retries idempotent.
	return database.DB.Transaction(func(tx *gorm.DB) error {
		packID := pack.ID
		payment := billing.Payment{
			UserID:          user.ID,
			PointPackID:     &packID,
			StripeSessionID: fullSession.ID,
			PointsDelta:     pack.Points,
			AmountEUR:       float64(fullSession.AmountTotal) / 100.0,
			Status:          infrastripe.NormalizePaymentStatus(&status),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment (possibly already processed): %w", err)
		}

		updates := membership.PointsUpdates(user.Points + pack.Points)
		if fullSession.Customer != nil && fullSession.Customer.ID != "" {
			updates["stripe_customer_id"] = fullSession.Customer.ID
		}

		if err := tx.Model(&users.User{}).
			Where("id = ?", user.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to credit points after checkout: %w", err)
		}
		return nil
	})
}

func userIDFromSessionOrRef(session *stripe.CheckoutSession) (uint, error) {
	userIDStr := ""
	if session.Metadata != nil {
		userIDStr = session.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = session.ClientReferenceID
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}
