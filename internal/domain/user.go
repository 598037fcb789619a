package domain

// Идентификаторы ролей, синхронизированы с Data Layer
const (
	RoleAthlete      = 1
	RoleTrainer      = 2
	RoleFieldManager = 3
	RoleSuperAdmin   = 4
)

// RoleName имя роли
type RoleName string

const (
	RoleNameAthlete      RoleName = "athlete"
	RoleNameTrainer      RoleName = "trainer"
	RoleNameFieldManager RoleName = "field_manager"
	RoleNameSuperAdmin   RoleName = "super_admin"
)

// RoleNameByID возвращает имя роли по её идентификатору
// Для неизвестного идентификатора возвращает athlete (минимальные права)
func RoleNameByID(roleID int) RoleName {
	switch roleID {
	case RoleTrainer:
		return RoleNameTrainer
	case RoleFieldManager:
		return RoleNameFieldManager
	case RoleSuperAdmin:
		return RoleNameSuperAdmin
	default:
		return RoleNameAthlete
	}
}

// User пользователь системы
// Каноническая запись принадлежит Data Layer
type User struct {
	ID       int64
	RoleID   int
	RoleName RoleName
	Active   bool
}

// IsFieldManager возвращает true для менеджера поля
func (u *User) IsFieldManager() bool {
	return u.RoleID == RoleFieldManager
}

// IsSuperAdmin возвращает true для суперадминистратора
func (u *User) IsSuperAdmin() bool {
	return u.RoleID == RoleSuperAdmin
}
