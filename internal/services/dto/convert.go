package dto

import "quicktweet_backend/internal/models"

func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Role:           string(user.Role),
		Bio:            user.Bio,
		Photo:          user.Photo,
		Status:         user.Status,
		Interests:      user.Interests,
		PendingRequest: user.PendingRequest,
	}
}

func ToUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, ToUserResponse(user))
	}
	return out
}
