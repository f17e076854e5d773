package models

// LedgerID - id единственной записи реестра, создается при старте приложения
const LedgerID uint = 1

// AuthorizationLedger - общий реестр аккаунтов, ожидающих одобрения.
// Инвариант: пользователь находится в PendingRequests тогда и только тогда,
// когда его флаг PendingRequest взведен.
type AuthorizationLedger struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	PendingRequests []*User `gorm:"many2many:ledger_pending_requests" json:"pending_requests"`
}

// HasPending проверяет наличие пользователя в реестре (по загруженным связям)
func (l *AuthorizationLedger) HasPending(id uint) bool {
	for _, u := range l.PendingRequests {
		if u.ID == id {
			return true
		}
	}
	return false
}
