package reports_test

import (
	"errors"
	"testing"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/models/reports"
	"bitbucket.org/craftlane/marketplace_backend/utils"
)

func TestResolveRegionScopeAdminUnrestricted(t *testing.T) {
	actor := reports.Actor{UserId: 1, Role: models.UserRoleAdmin}
	scope, err := reports.ResolveRegionScope(actor, nil)
	if err != nil {
		t.Fatalf("ResolveRegionScope: %v", err)
	}
	if !scope.IsUnrestricted() {
		t.Fatalf("admin without selector should be unrestricted")
	}
	if !scope.Allows(99) {
		t.Fatalf("unrestricted scope should allow any region")
	}
}

func TestResolveRegionScopeAdminNarrowsWithSelector(t *testing.T) {
	actor := reports.Actor{UserId: 1, Role: models.UserRoleFinance}
	region := 7
	scope, err := reports.ResolveRegionScope(actor, &region)
	if err != nil {
		t.Fatalf("ResolveRegionScope: %v", err)
	}
	if scope.IsUnrestricted() {
		t.Fatalf("selector should narrow the scope")
	}
	if !scope.Allows(7) || scope.Allows(8) {
		t.Fatalf("scope should allow only region 7")
	}
}

func TestResolveRegionScopeManagerDefaultsToAssigned(t *testing.T) {
	actor := reports.Actor{UserId: 2, Role: models.UserRoleRegionalManager, AssignedRegionIds: []int{2, 3}}
	scope, err := reports.ResolveRegionScope(actor, nil)
	if err != nil {
		t.Fatalf("ResolveRegionScope: %v", err)
	}
	if scope.IsUnrestricted() {
		t.Fatalf("regional manager must never be unrestricted")
	}
	if !scope.Allows(2) || !scope.Allows(3) || scope.Allows(4) {
		t.Fatalf("scope should cover exactly the assigned regions")
	}
}

func TestResolveRegionScopeManagerForbiddenRegion(t *testing.T) {
	actor := reports.Actor{UserId: 2, Role: models.UserRoleRegionalManager, AssignedRegionIds: []int{2, 3}}
	region := 5
	_, err := reports.ResolveRegionScope(actor, &region)
	if !errors.Is(err, utils.ErrForbiddenRegion) {
		t.Fatalf("expected ErrForbiddenRegion, got %v", err)
	}
}

func TestResolveRegionScopeManagerNarrowsWithinAssigned(t *testing.T) {
	actor := reports.Actor{UserId: 2, Role: models.UserRoleRegionalManager, AssignedRegionIds: []int{2, 3}}
	region := 3
	scope, err := reports.ResolveRegionScope(actor, &region)
	if err != nil {
		t.Fatalf("ResolveRegionScope: %v", err)
	}
	if !scope.Allows(3) || scope.Allows(2) {
		t.Fatalf("selector inside the assignment should narrow to that region only")
	}
}

func TestRegionIdsSortedAndNilWhenUnrestricted(t *testing.T) {
	scope := reports.RestrictedScope(9, 1, 4)
	ids := scope.RegionIds()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 4 || ids[2] != 9 {
		t.Fatalf("expected sorted [1 4 9], got %v", ids)
	}
	if reports.UnrestrictedScope().RegionIds() != nil {
		t.Fatalf("unrestricted scope should report nil region ids")
	}
}
