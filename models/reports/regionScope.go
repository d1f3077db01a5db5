package reports

import (
	"context"
	"fmt"
	"sort"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/utils"
)

// Actor is the already-resolved caller: the identity service decides role and
// assigned regions, the report engine only consumes them.
type Actor struct {
	UserId            int
	Role              models.UserRole
	AssignedRegionIds []int
}

func ActorFromContext(ctx context.Context) Actor {
	userId, _ := utils.GetUserIdFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)
	regionIds, _ := utils.GetRegionIdsFromContext(ctx)
	return Actor{
		UserId:            userId,
		Role:              models.UserRole(role),
		AssignedRegionIds: regionIds,
	}
}

// RegionScope is the single place region visibility is decided. Every source
// aggregator receives the same resolved scope and never re-derives policy
// from the role.
type RegionScope struct {
	unrestricted bool
	allowed      map[int]struct{}
}

func UnrestrictedScope() RegionScope {
	return RegionScope{unrestricted: true}
}

func RestrictedScope(regionIds ...int) RegionScope {
	allowed := make(map[int]struct{}, len(regionIds))
	for _, id := range regionIds {
		allowed[id] = struct{}{}
	}
	return RegionScope{allowed: allowed}
}

func (s RegionScope) IsUnrestricted() bool {
	return s.unrestricted
}

func (s RegionScope) Allows(regionId int) bool {
	if s.unrestricted {
		return true
	}
	_, ok := s.allowed[regionId]
	return ok
}

// RegionIds returns the allowed set sorted for deterministic output, or nil
// when unrestricted.
func (s RegionScope) RegionIds() []int {
	if s.unrestricted {
		return nil
	}
	ids := make([]int, 0, len(s.allowed))
	for id := range s.allowed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ResolveRegionScope applies the visibility policy. Request parameters can
// only narrow a scope, never widen it: a region-restricted actor asking for a
// region outside its assignment fails with ErrForbiddenRegion.
func ResolveRegionScope(actor Actor, requestedRegionId *int) (RegionScope, error) {
	if actor.Role.IsRegionRestricted() {
		if requestedRegionId != nil {
			allowed := false
			for _, id := range actor.AssignedRegionIds {
				if id == *requestedRegionId {
					allowed = true
					break
				}
			}
			if !allowed {
				return RegionScope{}, fmt.Errorf("%w: region %d", utils.ErrForbiddenRegion, *requestedRegionId)
			}
			return RestrictedScope(*requestedRegionId), nil
		}
		return RestrictedScope(actor.AssignedRegionIds...), nil
	}

	if requestedRegionId != nil {
		return RestrictedScope(*requestedRegionId), nil
	}
	return UnrestrictedScope(), nil
}
