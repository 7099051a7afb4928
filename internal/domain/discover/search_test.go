package discover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

func intPtr(v int) *int { return &v }

func fixtureUsers() []users.User {
	return []users.User{
		{ID: 1, Name: "Grace Adeyemi", Age: intPtr(27), Gender: "female", Denomination: "Baptist", Tier: "Gold", City: "Lagos", Career: "Nurse"},
		{ID: 2, Name: "David Okafor", Age: intPtr(31), Gender: "male", Denomination: "Pentecostal", Tier: "Bronze", City: "Abuja", Interests: []string{"worship music", "hiking"}},
		{ID: 3, Name: "Ruth Mensah", Age: intPtr(24), Gender: "female", Denomination: "Methodist", Tier: "Gold", Bio: "Choir leader and baker"},
		{ID: 4, Name: "Samuel Boateng", Age: intPtr(45), Gender: "male", Denomination: "Baptist", Tier: "Bronze", ChurchName: "Grace Chapel"},
	}
}

func TestFilter_EmptyQueryNoFiltersReturnsEverything(t *testing.T) {
	in := fixtureUsers()
	out := Filter(in, "", FilterState{})

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID, "source order preserved")
	}
}

func TestFilter_QueryNarrows(t *testing.T) {
	in := fixtureUsers()
	all := Filter(in, "", FilterState{})
	narrowed := Filter(in, "baptist", FilterState{})

	assert.LessOrEqual(t, len(narrowed), len(all))
	for _, u := range narrowed {
		assert.Contains(t, []uint{1, 4}, u.ID)
	}
}

func TestFilter_CaseInsensitiveFieldUnion(t *testing.T) {
	u := users.User{ID: 9, Denomination: "Baptist"}

	lower := Filter([]users.User{u}, "baptist", FilterState{})
	upper := Filter([]users.User{u}, "BAPTIST", FilterState{})

	require.Len(t, lower, 1)
	assert.Equal(t, lower, upper)
}

func TestFilter_MatchesInterestsAndChurch(t *testing.T) {
	in := fixtureUsers()

	byInterest := Filter(in, "hiking", FilterState{})
	require.Len(t, byInterest, 1)
	assert.Equal(t, uint(2), byInterest[0].ID)

	byChurch := Filter(in, "grace chapel", FilterState{})
	require.Len(t, byChurch, 1)
	assert.Equal(t, uint(4), byChurch[0].ID)
}

func TestFilter_AgeAndTierANDComposition(t *testing.T) {
	// Four quadrants: (in/out of age range) x (matching/non-matching tier).
	in := []users.User{
		{ID: 1, Age: intPtr(30), Tier: "Gold"},   // in range, Gold
		{ID: 2, Age: intPtr(30), Tier: "Bronze"}, // in range, wrong tier
		{ID: 3, Age: intPtr(50), Tier: "Gold"},   // out of range, Gold
		{ID: 4, Age: intPtr(50), Tier: "Bronze"}, // out of range, wrong tier
	}

	out := Filter(in, "", FilterState{AgeMin: 25, AgeMax: 35, Tier: "Gold"})
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestFilter_MissingAgeNotExcluded(t *testing.T) {
	in := []users.User{
		{ID: 1, Age: nil},
		{ID: 2, Age: intPtr(60)},
	}
	out := Filter(in, "", FilterState{AgeMin: 20, AgeMax: 30})
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestFilter_UnknownEnumFailsOpen(t *testing.T) {
	in := fixtureUsers()

	// A bogus tier filter behaves as "all" instead of matching nobody.
	out := Filter(in, "", FilterState{Tier: "mythril"})
	assert.Len(t, out, len(in))

	out = Filter(in, "", FilterState{Tier: FilterAll})
	assert.Len(t, out, len(in))
}

func TestFilter_CategoryMatchesLookingForAndInterests(t *testing.T) {
	in := []users.User{
		{ID: 1, LookingFor: "Marriage"},
		{ID: 2, Interests: []string{"worship music", "hiking"}},
		{ID: 3, LookingFor: "Friendship"},
	}

	out := Filter(in, "", FilterState{Category: "marriage"})
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)

	out = Filter(in, "", FilterState{Category: "hiking"})
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)

	out = Filter(in, "", FilterState{Category: FilterAll})
	assert.Len(t, out, len(in))
}

func TestFilter_GenderEquality(t *testing.T) {
	in := fixtureUsers()
	out := Filter(in, "", FilterState{Gender: "Female"})
	require.Len(t, out, 2)
	for _, u := range out {
		assert.Equal(t, "female", u.Gender)
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	out := Filter(nil, "anything", FilterState{Gender: "female"})
	assert.Empty(t, out)
}

func TestSearch_QuerySubsetProperty(t *testing.T) {
	in := fixtureUsers()
	f := FilterState{Gender: "male"}

	base := Search(in, "", f, SortRecent)
	narrowed := Search(in, "worship", f, SortRecent)

	baseIDs := map[uint]bool{}
	for _, u := range base {
		baseIDs[u.ID] = true
	}
	for _, u := range narrowed {
		assert.True(t, baseIDs[u.ID], "query results must be a subset of the unqueried results")
	}
}

func TestSearch_DefaultSortIsRecent(t *testing.T) {
	now := time.Now()
	in := []users.User{
		{ID: 1, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: 2, CreatedAt: now},
		{ID: 3, CreatedAt: now.Add(-1 * time.Hour)},
	}

	out := Search(in, "", FilterState{}, "")
	require.Len(t, out, 3)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)
	assert.Equal(t, uint(1), out[2].ID)
}
