package models

// Роли пользователей
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// IsValid проверяет, что роль одна из известных
func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

// Toggle переключает роль USER <-> ADMIN
func (r UserRole) Toggle() UserRole {
	if r == UserRoleAdmin {
		return UserRoleUser
	}
	return UserRoleAdmin
}
