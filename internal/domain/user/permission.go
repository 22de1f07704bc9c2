package user

// Action is a permission verb checked at the API boundary.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Modules known to the permission table.
const (
	ModuleEmployee   = "employee"
	ModuleLeave      = "leave"
	ModuleTransfer   = "transfer"
	ModuleAttendance = "attendance"
	ModuleHoliday    = "holiday"
	ModuleMaster     = "master"
)

var allActions = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete}

// rolePermissions maps role -> module -> allowed actions. Admin is handled
// separately (everything).
var rolePermissions = map[Role]map[string][]Action{
	RoleHR: {
		ModuleEmployee:   allActions,
		ModuleLeave:      allActions,
		ModuleTransfer:   allActions,
		ModuleAttendance: allActions,
		ModuleHoliday:    allActions,
		ModuleMaster:     allActions,
	},
	RoleManager: {
		ModuleEmployee:   {ActionView},
		ModuleLeave:      {ActionView, ActionCreate, ActionEdit},
		ModuleTransfer:   {ActionView, ActionCreate, ActionEdit},
		ModuleAttendance: {ActionView},
		ModuleHoliday:    {ActionView},
		ModuleMaster:     {ActionView},
	},
	RoleStaff: {
		ModuleEmployee:   {ActionView},
		ModuleLeave:      {ActionView, ActionCreate},
		ModuleAttendance: {ActionView},
		ModuleHoliday:    {ActionView},
		ModuleMaster:     {ActionView},
	},
}

// HasPermission reports whether role may perform action on module.
func HasPermission(role Role, module string, action Action) bool {
	if role == RoleAdmin {
		return true
	}
	actions, ok := rolePermissions[role][module]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
