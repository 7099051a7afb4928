package users

import (
	"net/http"
	"time"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/access"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// One clock capture per request; every derived flag reads the same "now".
	now := time.Now()
	_, _ = users.EnsureHandle(database.DB, &user)

	caps := access.Evaluate(now, user)

	resp := MeResponse{
		User:       BuildUserDTO(user),
		Membership: BuildMembershipDTO(now, user),
		Access:     BuildAccessDTO(caps),
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile accepts a loose payload because the clients and older
// backends disagree on field casing; users.Normalize produces the canonical
// shape and only profile fields are copied over.
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	incoming := users.Normalize(raw)

	// Absent fields stay untouched; only fields the payload carried are written.
	updates := map[string]interface{}{}
	setIfPresent := func(col, val string) {
		if val != "" {
			updates[col] = val
		}
	}
	setIfPresent("bio", incoming.Bio)
	setIfPresent("career", incoming.Career)
	setIfPresent("denomination", incoming.Denomination)
	setIfPresent("church_name", incoming.ChurchName)
	setIfPresent("church_branch", incoming.ChurchBranch)
	setIfPresent("city", incoming.City)
	setIfPresent("country", incoming.Country)
	setIfPresent("looking_for", incoming.LookingFor)
	setIfPresent("gender", incoming.Gender)
	if incoming.Age != nil {
		updates["age"] = *incoming.Age
	}
	if len(incoming.Interests) > 0 {
		updates["interests"] = users.StringSlice(incoming.Interests)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No profile fields to update"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload profile"})
		return
	}

	c.JSON(http.StatusOK, BuildUserDTO(user))
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	type Token struct {
		UserID int
	}
	var t Token
	if err := database.DB.Table("verification_tokens").Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	_ = database.DB.Exec("DELETE FROM verification_tokens WHERE token = ?", token)

	redirectURL := "http://localhost:5173/signin"
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
