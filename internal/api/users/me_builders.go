package users

import (
	"time"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/access"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/membership"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		UserName:     u.UserName,
		Role:         u.Role,
		IsVerified:   u.IsVerified,
		Age:          u.Age,
		Gender:       u.Gender,
		Denomination: u.Denomination,
		Bio:          u.Bio,
		Career:       u.Career,
		ChurchName:   u.ChurchName,
		ChurchBranch: u.ChurchBranch,
		City:         u.City,
		Country:      u.Country,
		LookingFor:   u.LookingFor,
		Interests:    u.Interests,
	}
}

func BuildMembershipDTO(now time.Time, u users.User) MembershipDTO {
	return MembershipDTO{
		Points:         u.Points,
		Tier:           membership.ResolveTier(u.Points),
		AccountAgeDays: membership.AccountAgeDays(u.CreatedAt, now),
		Trial:          BuildTrialDTO(now, u),
	}
}

func BuildTrialDTO(now time.Time, u users.User) *TrialDTO {
	if u.TrialStartAt == nil || u.TrialEndAt == nil {
		return nil
	}
	state := membership.TrialStatus(now, u.TrialWindow())
	return &TrialDTO{
		StartsAt: u.TrialStartAt,
		EndsAt:   u.TrialEndAt,
		Active:   state.InTrial,
		Expired:  state.Expired,
		DaysLeft: state.DaysRemaining,
	}
}

func BuildAccessDTO(caps access.Capabilities) AccessDTO {
	dto := AccessDTO{
		CanMessage:           caps.CanMessage,
		CanScheduleDates:     caps.CanScheduleDates,
		CanViewFullDiscovery: caps.CanViewFullDiscovery,
	}
	if !caps.CanViewFullDiscovery {
		cap := access.DiscoveryCap
		dto.DiscoveryCap = &cap
	}
	return dto
}
