package admin

import (
	"net/http"
	"time"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/billing"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/membership"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	IsVerified       bool       `json:"is_verified"`
	Points           int        `json:"points"`
	Tier             string     `json:"tier"`
	TrialStartAt     *time.Time `json:"trial_start_at,omitempty"`
	TrialEndAt       *time.Time `json:"trial_end_at,omitempty"`
	TrialUsed        bool       `json:"trial_used"`
	StripeCustomerID *string    `json:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type AdminPayment struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	PackName    *string `json:"pack_name,omitempty"`
	PointsDelta int     `json:"points_delta"`
	AmountEUR   float64 `json:"amount_eur"`
	Status      string  `json:"status"`
	InvoiceID   *string `json:"invoice_id,omitempty"`
	ReceiptURL  *string `json:"receipt_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers    int            `json:"total_users"`
	TotalRevenue  float64        `json:"total_revenue"`
	RecentRevenue float64        `json:"recent_revenue"`
	UsersPerTier  map[string]int `json:"users_per_tier"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		adminUsers = append(adminUsers, AdminUser{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			Role:             u.Role,
			IsVerified:       u.IsVerified,
			Points:           u.Points,
			Tier:             u.Tier,
			TrialStartAt:     u.TrialStartAt,
			TrialEndAt:       u.TrialEndAt,
			TrialUsed:        u.TrialUsed,
			StripeCustomerID: u.StripeCustomerID,
			CreatedAt:        u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Preload("PointPack").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	var result []AdminPayment
	for _, p := range payments {
		var packName *string
		if p.PointPack != nil {
			packName = &p.PointPack.Name
		}
		result = append(result, AdminPayment{
			ID:          p.ID,
			Email:       p.User.Email,
			PackName:    packName,
			PointsDelta: p.PointsDelta,
			AmountEUR:   p.AmountEUR,
			Status:      p.Status,
			InvoiceID:   p.InvoiceID,
			ReceiptURL:  p.ReceiptURL,
			CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers int64
	var totalRevenue float64
	var recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&billing.Payment{}).Where("status = ?", "paid").Select("COALESCE(SUM(amount_eur), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", "paid", thirtyDaysAgo).
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type TierCount struct {
		Tier  string
		Count int
	}
	var counts []TierCount

	database.DB.
		Table("users").
		Select("tier, COUNT(id) as count").
		Group("tier").
		Scan(&counts)

	stats.UsersPerTier = map[string]int{}
	for _, tc := range counts {
		stats.UsersPerTier[tc.Tier] = tc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("PointPack").Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"payments": payments,
	})
}

// GrantPoints adjusts a user's balance out-of-band (support credits,
// promotions). Tier is rewritten in the same update.
func GrantPoints(c *gin.Context) {
	userID := c.Param("id")

	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid delta"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := membership.PointsUpdates(user.Points + body.Delta)
	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update points"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points": updates["points"],
		"tier":   updates["tier"],
	})
}
