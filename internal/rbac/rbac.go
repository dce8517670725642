// Package rbac defines the static capability table gating what each
// role sees and may do on each screen. It is checked once per render,
// not scattered through the screens. The gates are UX only: the server
// re-checks authorization on every call, and the client treats a
// server rejection the same whether or not an affordance was shown.
package rbac

import "github.com/dbmrq/officedesk/internal/crm"

// Screen identifies a resource screen.
type Screen string

const (
	ScreenOffices   Screen = "offices"
	ScreenBookings  Screen = "bookings"
	ScreenContracts Screen = "contracts"
	ScreenPayments  Screen = "payments"
	ScreenRequests  Screen = "requests"
	ScreenTenants   Screen = "tenants"
)

// Action is something a user can do on a screen.
type Action string

const (
	// ActionView gates the screen's menu entry.
	ActionView Action = "view"
	// ActionCreate gates the create modal.
	ActionCreate Action = "create"
	// ActionEdit gates the edit modal.
	ActionEdit Action = "edit"
	// ActionDelete gates record deletion.
	ActionDelete Action = "delete"
	// ActionAdvance gates the one-step request status advance.
	ActionAdvance Action = "advance"
	// ActionSweep gates the overdue-payment sweep.
	ActionSweep Action = "sweep"
)

// MenuOrder is the fixed order screens appear in the navigation menu.
var MenuOrder = []Screen{
	ScreenOffices,
	ScreenBookings,
	ScreenContracts,
	ScreenPayments,
	ScreenRequests,
	ScreenTenants,
}

type roleSet map[crm.Role]bool

func roles(rs ...crm.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

var everyone = roles(crm.RoleAdmin, crm.RoleTenant, crm.RoleStaff)

// capabilities is the per-screen allow-list: screen × action → roles.
// Absent actions are allowed to nobody.
var capabilities = map[Screen]map[Action]roleSet{
	ScreenOffices: {
		ActionView:   everyone,
		ActionCreate: roles(crm.RoleAdmin),
		ActionEdit:   roles(crm.RoleAdmin),
		ActionDelete: roles(crm.RoleAdmin),
	},
	ScreenBookings: {
		ActionView:   everyone,
		ActionCreate: roles(crm.RoleAdmin, crm.RoleTenant),
		ActionDelete: roles(crm.RoleAdmin, crm.RoleTenant),
	},
	ScreenContracts: {
		ActionView: roles(crm.RoleAdmin, crm.RoleTenant),
	},
	ScreenPayments: {
		ActionView:   everyone,
		ActionCreate: roles(crm.RoleAdmin, crm.RoleTenant),
		ActionSweep:  roles(crm.RoleAdmin, crm.RoleStaff),
	},
	ScreenRequests: {
		ActionView:    everyone,
		ActionCreate:  roles(crm.RoleAdmin, crm.RoleTenant),
		ActionDelete:  roles(crm.RoleAdmin, crm.RoleTenant),
		ActionAdvance: roles(crm.RoleStaff),
	},
	ScreenTenants: {
		ActionView: roles(crm.RoleAdmin),
	},
}

// Allowed reports whether role may perform action on screen.
func Allowed(role crm.Role, screen Screen, action Action) bool {
	actions, ok := capabilities[screen]
	if !ok {
		return false
	}
	return actions[action][role]
}

// VisibleScreens returns the screens role may view, in menu order.
func VisibleScreens(role crm.Role) []Screen {
	var visible []Screen
	for _, screen := range MenuOrder {
		if Allowed(role, screen, ActionView) {
			visible = append(visible, screen)
		}
	}
	return visible
}
