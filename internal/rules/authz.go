package rules

import "github.com/m04kA/SFB-ReservationBroker/internal/domain"

// Action действие над резервацией, требующее авторизации
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

// Scope область, в которой роль уполномочена выполнять действие
type Scope string

const (
	// ScopeAny действие разрешено над любой резервацией
	ScopeAny Scope = "any"
	// ScopeShift действие разрешено при активной смене, покрывающей поле
	// и время начала резервации
	ScopeShift Scope = "shift"
	// ScopeOwn действие разрешено над собственной резервацией заявителя
	ScopeOwn Scope = "own"
)

// Декларативная таблица авторизации: (действие, роль) -> области
// Роль, отсутствующая в строке действия, не уполномочена вовсе
var permissionTable = map[Action]map[int][]Scope{
	ActionApprove: {
		domain.RoleSuperAdmin:   {ScopeAny},
		domain.RoleFieldManager: {ScopeShift},
	},
	ActionReject: {
		domain.RoleSuperAdmin:   {ScopeAny},
		domain.RoleFieldManager: {ScopeShift},
	},
	ActionCancel: {
		domain.RoleSuperAdmin:   {ScopeAny},
		domain.RoleFieldManager: {ScopeShift},
		domain.RoleAthlete:      {ScopeOwn},
		domain.RoleTrainer:      {ScopeOwn},
	},
}

// AllowedScopes возвращает области, в которых роль может выполнять действие
// Пустой результат означает полный запрет
func AllowedScopes(action Action, roleID int) []Scope {
	return permissionTable[action][roleID]
}
