package discover

import (
	"net/http"
	"strconv"

	"github.com/eklipse1999/dating-platform-sub000/database"
	"github.com/eklipse1999/dating-platform-sub000/internal/app/http/middleware"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/access"
	discoverdomain "github.com/eklipse1999/dating-platform-sub000/internal/domain/discover"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/session"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// roster is the session store the pipeline reads its candidate collection
// from. Each successful DB load refreshes it; when the DB is unavailable the
// last known roster keeps the discover pages serving.
var roster = session.NewStore(nil)

// loadCandidates materializes the verified-profile collection, mirrors it
// into the roster store, and drops the viewer from the returned slice.
func loadCandidates(viewerID uint) ([]users.User, error) {
	var all []users.User
	if err := database.DB.
		Where("is_verified = ?", true).
		Order("created_at DESC").
		Find(&all).Error; err != nil {
		if cached := roster.Roster(); len(cached) > 0 {
			return excludeViewer(cached, viewerID), nil
		}
		return nil, err
	}
	roster.SetRoster(all)
	return excludeViewer(all, viewerID), nil
}

func excludeViewer(list []users.User, viewerID uint) []users.User {
	out := make([]users.User, 0, len(list))
	for _, u := range list {
		if u.ID != viewerID {
			out = append(out, u)
		}
	}
	return out
}

type ProfileDTO struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	UserName     *string  `json:"user_name"`
	Age          *int     `json:"age,omitempty"`
	Gender       string   `json:"gender,omitempty"`
	Denomination string   `json:"denomination,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Career       string   `json:"career,omitempty"`
	ChurchName   string   `json:"church_name,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country,omitempty"`
	LookingFor   string   `json:"looking_for,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Tier         string   `json:"tier"`
	Likes        int      `json:"likes"`
	Distance     string   `json:"distance,omitempty"`
}

type BrowseResponse struct {
	Profiles []ProfileDTO `json:"profiles"`
	Total    int          `json:"total"`
	Capped   bool         `json:"capped"`
}

// Browse runs the search pipeline over the full candidate collection.
// Filtering happens here, client-side of the DB, over one materialized page;
// the pipeline is cheap enough to re-run per request at this scale.
func Browse(c *gin.Context) {
	viewer, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	caps, _ := middleware.CapabilitiesFrom(c)

	candidates, err := loadCandidates(viewer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profiles"})
		return
	}

	filters := filtersFromQuery(c)
	query := c.Query("q")
	sortBy := c.DefaultQuery("sort", discoverdomain.SortRecent)

	results := discoverdomain.Search(candidates, query, filters, sortBy)
	total := len(results)
	visible := access.ApplyDiscoveryCap(caps, results)

	out := make([]ProfileDTO, 0, len(visible))
	for _, u := range visible {
		out = append(out, toProfileDTO(u))
	}

	c.JSON(http.StatusOK, BrowseResponse{
		Profiles: out,
		Total:    total,
		Capped:   len(visible) < total,
	})
}

// Dashboard is the no-sort variant: same matching, source order preserved.
func Dashboard(c *gin.Context) {
	viewer, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	caps, _ := middleware.CapabilitiesFrom(c)

	candidates, err := loadCandidates(viewer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profiles"})
		return
	}

	results := discoverdomain.Filter(candidates, c.Query("q"), filtersFromQuery(c))
	total := len(results)
	visible := access.ApplyDiscoveryCap(caps, results)

	out := make([]ProfileDTO, 0, len(visible))
	for _, u := range visible {
		out = append(out, toProfileDTO(u))
	}

	c.JSON(http.StatusOK, BrowseResponse{
		Profiles: out,
		Total:    total,
		Capped:   len(visible) < total,
	})
}

func filtersFromQuery(c *gin.Context) discoverdomain.FilterState {
	return discoverdomain.FilterState{
		AgeMin:       atoiOrZero(c.Query("age_min")),
		AgeMax:       atoiOrZero(c.Query("age_max")),
		Gender:       c.Query("gender"),
		Denomination: c.Query("denomination"),
		Tier:         c.Query("tier"),
		Category:     c.Query("category"),
	}
}

// atoiOrZero fails open: an unparseable bound disables the clause.
func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func toProfileDTO(u users.User) ProfileDTO {
	return ProfileDTO{
		ID:           u.ID,
		Name:         u.Name,
		UserName:     u.UserName,
		Age:          u.Age,
		Gender:       u.Gender,
		Denomination: u.Denomination,
		Bio:          u.Bio,
		Career:       u.Career,
		ChurchName:   u.ChurchName,
		City:         u.City,
		Country:      u.Country,
		LookingFor:   u.LookingFor,
		Interests:    u.Interests,
		Tier:         u.Tier,
		Likes:        u.Likes,
		Distance:     u.Distance,
	}
}
