package handlers

import (
	"quicktweet_backend/internal/services"
	"quicktweet_backend/internal/validator"
)

type AppHandlers struct {
	User   *UserHandler
	Friend *FriendHandler
	Admin  *AdminHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		User:   NewUserHandler(base, container.AuthService, container.UserService, container.AccountService),
		Friend: NewFriendHandler(base, container.FriendService),
		Admin:  NewAdminHandler(base, container.AccountService, container.AuthorizationService),
	}
}
