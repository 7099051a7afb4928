package messages

import (
	"net/http"
	"time"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/app/http/middleware"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/matches"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likesIncrement is the in-database counter bump used when a profile is
// liked, so concurrent likes never overwrite each other.
func likesIncrement() clause.Expr {
	return gorm.Expr("likes + ?", 1)
}

// SendMessage delivers a chat message. Plain messages need CanMessage (the
// route guard enforces that); a body that reads like a date proposal is held
// to the date-scheduling gate too, with the admin bypass applied here at the
// call site, not inside the policy.
func SendMessage(c *gin.Context) {
	sender, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	caps, _ := middleware.CapabilitiesFrom(c)

	var input struct {
		RecipientID uint   `json:"recipient_id" binding:"required"`
		Body        string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if matches.ContainsDateKeyword(input.Body) {
		if !sender.IsAdmin() && !caps.CanScheduleDates {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Date scheduling unlocks 21 days after signup. Keep chatting until then!",
			})
			return
		}
	}

	var recipient users.User
	if err := database.DB.First(&recipient, input.RecipientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		return
	}

	msg := matches.Message{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Body:        input.Body,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sent", "id": msg.ID})
}

func ListConversation(c *gin.Context) {
	user, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	otherID := c.Param("id")

	var msgs []matches.Message
	if err := database.DB.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			user.ID, otherID, otherID, user.ID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation"})
		return
	}

	c.JSON(http.StatusOK, msgs)
}

// LikeProfile records a directed like; a reciprocal like creates a match.
func LikeProfile(c *gin.Context) {
	user, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		TargetID uint `json:"target_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.TargetID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot like your own profile"})
		return
	}

	var target users.User
	if err := database.DB.First(&target, input.TargetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	like := matches.Like{UserID: user.ID, TargetID: target.ID}
	if err := database.DB.Create(&like).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already liked"})
		return
	}
	// Atomic in SQL; concurrent likes on the same profile must all count.
	if err := database.DB.Model(&users.User{}).Where("id = ?", target.ID).
		UpdateColumn("likes", likesIncrement()).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record like"})
		return
	}

	// Reciprocal like -> match. Pair stored with the lower ID first so the
	// unique index catches duplicates regardless of who liked last.
	var reciprocal matches.Like
	matched := false
	if err := database.DB.
		Where("user_id = ? AND target_id = ?", target.ID, user.ID).
		First(&reciprocal).Error; err == nil {
		a, b := user.ID, target.ID
		if b < a {
			a, b = b, a
		}
		match := matches.Match{UserAID: a, UserBID: b}
		if err := database.DB.Create(&match).Error; err == nil {
			matched = true
		}
	}

	c.JSON(http.StatusOK, gin.H{"liked": true, "matched": matched})
}

func ListMatches(c *gin.Context) {
	user, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var found []matches.Match
	if err := database.DB.
		Preload("UserA").
		Preload("UserB").
		Where("user_a_id = ? OR user_b_id = ?", user.ID, user.ID).
		Order("created_at DESC").
		Find(&found).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load matches"})
		return
	}

	type matchDTO struct {
		ID        uint      `json:"id"`
		UserID    uint      `json:"user_id"`
		Name      string    `json:"name"`
		UserName  *string   `json:"user_name"`
		MatchedAt time.Time `json:"matched_at"`
	}

	out := make([]matchDTO, 0, len(found))
	for _, m := range found {
		other := m.UserA
		if other.ID == user.ID {
			other = m.UserB
		}
		out = append(out, matchDTO{
			ID:        m.ID,
			UserID:    other.ID,
			Name:      other.Name,
			UserName:  other.UserName,
			MatchedAt: m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

// CreateDateRequest schedules a date with a matched user. The account-age
// gate applies to regular users; admins bypass it here.
func CreateDateRequest(c *gin.Context) {
	user, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	caps, _ := middleware.CapabilitiesFrom(c)

	if !user.IsAdmin() && !caps.CanScheduleDates {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Date scheduling unlocks 21 days after signup.",
		})
		return
	}

	var input struct {
		InviteeID   uint      `json:"invitee_id" binding:"required"`
		Venue       string    `json:"venue" binding:"required"`
		ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Same clock capture the capability flags were computed with.
	if !input.ScheduledAt.After(middleware.RequestNowFrom(c)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be scheduled in the future"})
		return
	}

	a, b := user.ID, input.InviteeID
	if b < a {
		a, b = b, a
	}
	var match matches.Match
	if err := database.DB.
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&match).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only schedule dates with your matches"})
		return
	}

	req := matches.DateRequest{
		RequesterID: user.ID,
		InviteeID:   input.InviteeID,
		Venue:       input.Venue,
		ScheduledAt: input.ScheduledAt,
		Status:      "proposed",
	}
	if err := database.DB.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create date request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Date proposed", "id": req.ID})
}

// RespondDateRequest lets the invitee accept or decline.
func RespondDateRequest(c *gin.Context) {
	user, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Accept bool `json:"accept"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var req matches.DateRequest
	if err := database.DB.First(&req, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Date request not found"})
		return
	}
	if req.InviteeID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the invitee can respond"})
		return
	}
	if req.Status != "proposed" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date request already resolved"})
		return
	}

	status := "declined"
	if input.Accept {
		status = "accepted"
	}
	if err := database.DB.Model(&req).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update date request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
