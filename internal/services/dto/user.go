package dto

// RegisterRequest - данные регистрации нового аккаунта.
// Все поля обязательные, аккаунт создается в статусе "ожидает одобрения".
type RegisterRequest struct {
	Username         string `json:"username" validate:"required,max=64"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	SecurityQuestion string `json:"security_question" validate:"required"`
	SecurityAnswer   string `json:"security_answer" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID             uint     `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	Bio            string   `json:"bio"`
	Photo          string   `json:"photo"`
	Status         string   `json:"status"`
	Interests      []string `json:"interests"`
	PendingRequest bool     `json:"pending_request"`
}

type UpdateProfileRequest struct {
	Bio       string   `json:"bio" validate:"max=500"`
	Photo     string   `json:"photo" validate:"omitempty,url"`
	Status    string   `json:"status" validate:"max=200"`
	Interests []string `json:"interests" validate:"max=32,dive,required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=200"`
}

// FriendRequest - тело запросов графа друзей: кого добавить/принять/удалить
type FriendRequest struct {
	Username string `json:"username" validate:"required"`
}
