package services

import (
	"quicktweet_backend/internal/repositories"
)

// ServiceContainer - все сервисы приложения в одном месте
type ServiceContainer struct {
	AuthService          AuthService
	UserService          UserService
	FriendService        FriendService
	AccountService       AccountService
	AuthorizationService AuthorizationService
}

func NewServiceContainer(store repositories.Store) *ServiceContainer {
	return &ServiceContainer{
		AuthService:          NewAuthService(store),
		UserService:          NewUserService(store),
		FriendService:        NewFriendService(store),
		AccountService:       NewAccountService(store),
		AuthorizationService: NewAuthorizationService(store),
	}
}
