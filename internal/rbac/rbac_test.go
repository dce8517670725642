package rbac

import (
	"testing"

	"github.com/dbmrq/officedesk/internal/crm"
)

func TestVisibleScreensAdmin(t *testing.T) {
	visible := VisibleScreens(crm.RoleAdmin)

	want := []Screen{ScreenOffices, ScreenBookings, ScreenContracts, ScreenPayments, ScreenRequests, ScreenTenants}
	if len(visible) != len(want) {
		t.Fatalf("admin should see %d screens, got %d", len(want), len(visible))
	}
	for i, screen := range want {
		if visible[i] != screen {
			t.Errorf("admin screen %d: want %s, got %s", i, screen, visible[i])
		}
	}
}

func TestVisibleScreensTenant(t *testing.T) {
	visible := VisibleScreens(crm.RoleTenant)

	for _, screen := range visible {
		if screen == ScreenTenants {
			t.Error("tenant must not see the tenants screen")
		}
	}
	if len(visible) != 5 {
		t.Errorf("tenant should see 5 screens, got %d", len(visible))
	}
}

func TestVisibleScreensStaff(t *testing.T) {
	visible := VisibleScreens(crm.RoleStaff)

	for _, screen := range visible {
		if screen == ScreenTenants {
			t.Error("staff must not see the tenants screen")
		}
		if screen == ScreenContracts {
			t.Error("staff must not see the contracts screen")
		}
	}
	if len(visible) != 4 {
		t.Errorf("staff should see 4 screens, got %d", len(visible))
	}
}

func TestOfficesMutableOnlyByAdmin(t *testing.T) {
	for _, action := range []Action{ActionCreate, ActionEdit, ActionDelete} {
		if !Allowed(crm.RoleAdmin, ScreenOffices, action) {
			t.Errorf("admin should be allowed to %s offices", action)
		}
		if Allowed(crm.RoleTenant, ScreenOffices, action) {
			t.Errorf("tenant must not be allowed to %s offices", action)
		}
		if Allowed(crm.RoleStaff, ScreenOffices, action) {
			t.Errorf("staff must not be allowed to %s offices", action)
		}
	}
}

func TestStaffOnlyAdvancesRequests(t *testing.T) {
	if !Allowed(crm.RoleStaff, ScreenRequests, ActionAdvance) {
		t.Error("staff should advance request status")
	}
	if Allowed(crm.RoleStaff, ScreenRequests, ActionCreate) {
		t.Error("staff must not create requests")
	}
	if Allowed(crm.RoleStaff, ScreenRequests, ActionDelete) {
		t.Error("staff must not delete requests")
	}
	if Allowed(crm.RoleAdmin, ScreenRequests, ActionAdvance) {
		t.Error("only staff advances request status")
	}
}

func TestPaymentSweepRoles(t *testing.T) {
	if !Allowed(crm.RoleAdmin, ScreenPayments, ActionSweep) {
		t.Error("admin should run the overdue sweep")
	}
	if !Allowed(crm.RoleStaff, ScreenPayments, ActionSweep) {
		t.Error("staff should run the overdue sweep")
	}
	if Allowed(crm.RoleTenant, ScreenPayments, ActionSweep) {
		t.Error("tenant must not run the overdue sweep")
	}
}

func TestContractsReadOnly(t *testing.T) {
	for _, role := range []crm.Role{crm.RoleAdmin, crm.RoleTenant, crm.RoleStaff} {
		for _, action := range []Action{ActionCreate, ActionEdit, ActionDelete} {
			if Allowed(role, ScreenContracts, action) {
				t.Errorf("%s must not %s contracts", role, action)
			}
		}
	}
}

func TestUnknownRoleSeesNothing(t *testing.T) {
	if got := VisibleScreens(crm.Role("intruder")); got != nil {
		t.Errorf("unknown role should see no screens, got %v", got)
	}
	if Allowed(crm.Role("intruder"), ScreenOffices, ActionView) {
		t.Error("unknown role must not view any screen")
	}
}
