package tui

import (
	"strings"
	"testing"

	"github.com/dbmrq/officedesk/internal/config"
	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/rbac"
	"github.com/dbmrq/officedesk/internal/session"
)

func testShell(role crm.Role) *ShellModel {
	sess := &session.Session{Token: "tok", UserID: 1, Role: role, Username: "alice"}
	return NewShellModel(nil, config.New(), sess)
}

func TestShellMenuFollowsRole(t *testing.T) {
	cases := []struct {
		role    crm.Role
		screens int
		missing []string
	}{
		{crm.RoleAdmin, 6, nil},
		{crm.RoleTenant, 5, []string{"Tenants"}},
		{crm.RoleStaff, 4, []string{"Tenants", "Contracts"}},
	}

	for _, tc := range cases {
		m := testShell(tc.role)
		items := m.menu.Items()
		if len(items) != tc.screens {
			t.Errorf("%s should see %d screens, got %d", tc.role, tc.screens, len(items))
		}
		for _, label := range tc.missing {
			for _, item := range items {
				if item.Label == label {
					t.Errorf("%s should not see %s", tc.role, label)
				}
			}
		}
	}
}

func TestShellStartsOnFirstVisibleScreen(t *testing.T) {
	m := testShell(crm.RoleStaff)
	if m.current == nil {
		t.Fatal("Shell should mount a screen on start")
	}
	if m.current.ID() != rbac.ScreenOffices {
		t.Errorf("Staff should start on offices, got %s", m.current.ID())
	}
}

func TestShellDigitSwitch(t *testing.T) {
	m := testShell(crm.RoleAdmin)
	m.SetSize(100, 30)

	m, cmd := m.Update(keyMsg("3"))
	if m.current.ID() != rbac.ScreenContracts {
		t.Errorf("Key 3 should mount contracts, got %s", m.current.ID())
	}
	if cmd == nil {
		t.Error("Mounting a screen should start its load")
	}

	// Staff have a shorter menu: 3 is payments, 5 is out of range.
	s := testShell(crm.RoleStaff)
	s.SetSize(100, 30)
	s, _ = s.Update(keyMsg("3"))
	if s.current.ID() != rbac.ScreenPayments {
		t.Errorf("Key 3 for staff should mount payments, got %s", s.current.ID())
	}
	s, _ = s.Update(keyMsg("5"))
	if s.current.ID() != rbac.ScreenPayments {
		t.Error("Out-of-range digits should not switch screens")
	}
}

func TestShellSwitchDiscardsStaleResult(t *testing.T) {
	m := testShell(crm.RoleAdmin)
	m.SetSize(100, 30)

	// Mount bookings, then deliver a result tagged for offices.
	m, _ = m.Update(keyMsg("2"))
	stale := ListLoadedMsg{
		Screen: rbac.ScreenOffices,
		Result: LoadResult{Rows: []Row{{ID: 1, Cells: []string{"1", "stale office"}}}},
	}
	m, _ = m.Update(stale)

	if strings.Contains(m.current.View(), "stale office") {
		t.Error("A result for an unmounted screen should be discarded")
	}
}

func TestShellLogoutKey(t *testing.T) {
	m := testShell(crm.RoleAdmin)
	m.SetSize(100, 30)

	m, cmd := m.Update(keyMsg("l"))
	if cmd == nil {
		t.Fatal("l should produce a command")
	}
	if _, ok := cmd().(LogoutMsg); !ok {
		t.Error("l should emit LogoutMsg")
	}
}

func TestShellCompactMenu(t *testing.T) {
	m := testShell(crm.RoleAdmin)

	m.SetSize(60, 30)
	if !m.menu.Compact() {
		t.Fatal("A 60-column terminal should collapse the menu")
	}

	m, _ = m.Update(keyMsg("m"))
	if !m.menu.IsVisible() {
		t.Error("m should open the menu overlay in compact mode")
	}

	m.SetSize(120, 30)
	if m.menu.Compact() {
		t.Error("A wide terminal should expand the menu")
	}
}

func TestShellStatusBarShowsIdentity(t *testing.T) {
	m := testShell(crm.RoleTenant)
	m.SetSize(100, 30)

	view := m.View()
	if !strings.Contains(view, "alice") || !strings.Contains(view, "tenant") {
		t.Error("Status bar should show the signed-in identity")
	}
}
