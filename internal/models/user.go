package models

import (
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Username         string   `gorm:"uniqueIndex;not null" json:"username"`
	Email            string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string   `gorm:"not null" json:"-"`
	Role             UserRole `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	SecurityQuestion string   `gorm:"not null" json:"security_question"`
	SecurityAnswer   string   `gorm:"not null" json:"-"`

	Bio       string                      `json:"bio"`
	Photo     string                      `json:"photo"`
	Status    string                      `json:"status"`
	Interests datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"interests"`

	// Новый аккаунт ждет одобрения администратора
	PendingRequest bool `gorm:"not null;default:false" json:"pending_request"`

	// Друзья - симметричное отношение, хранится парами строк (A,B) и (B,A).
	// FriendRequests - входящие заявки: присутствие X означает "X просится в друзья".
	Friends        []*User `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID" json:"-"`
	FriendRequests []*User `gorm:"many2many:user_friend_requests;joinForeignKey:UserID;joinReferences:SenderID" json:"-"`
}

// HasFriend проверяет наличие пользователя в списке друзей (по загруженным связям)
func (u *User) HasFriend(id uint) bool {
	for _, f := range u.Friends {
		if f.ID == id {
			return true
		}
	}
	return false
}

// HasFriendRequest проверяет наличие входящей заявки от пользователя
func (u *User) HasFriendRequest(id uint) bool {
	for _, f := range u.FriendRequests {
		if f.ID == id {
			return true
		}
	}
	return false
}
