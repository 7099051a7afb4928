package events

import (
	"net/http"
	"time"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/events"

	"github.com/gin-gonic/gin"
)

func ListUpcoming(c *gin.Context) {
	var list []events.Event
	if err := database.DB.
		Where("starts_at > ?", time.Now()).
		Order("starts_at ASC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func RSVP(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var event events.Event
	if err := database.DB.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.Capacity > 0 {
		var count int64
		database.DB.Model(&events.RSVP{}).Where("event_id = ?", event.ID).Count(&count)
		if count >= int64(event.Capacity) {
			c.JSON(http.StatusConflict, gin.H{"error": "Event is full"})
			return
		}
	}

	rsvp := events.RSVP{EventID: event.ID, UserID: userID}
	if err := database.DB.Create(&rsvp).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already registered for this event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "See you there!"})
}

// CreateEvent is admin-only (enforced by route middleware).
func CreateEvent(c *gin.Context) {
	var input struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		Location    string    `json:"location" binding:"required"`
		StartsAt    time.Time `json:"starts_at" binding:"required"`
		Capacity    int       `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := events.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusOK, event)
}
