package handlers

import (
	"net/http"

	"quicktweet_backend/internal/services"
	"quicktweet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	*BaseHandler
	friends services.FriendService
}

func NewFriendHandler(base *BaseHandler, friends services.FriendService) *FriendHandler {
	return &FriendHandler{
		BaseHandler: base,
		friends:     friends,
	}
}

// SendRequest отправляет заявку в друзья от имени текущего пользователя
func (h *FriendHandler) SendRequest(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	var req dto.FriendRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.friends.SendFriendRequest(c.Request.Context(), username, CleanIdentifier(req.Username)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request sent"})
}

// AddFriend устанавливает дружбу. Если от второй стороны висела заявка,
// она закрывается тем же действием.
func (h *FriendHandler) AddFriend(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	var req dto.FriendRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.friends.AddFriend(c.Request.Context(), username, CleanIdentifier(req.Username)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend added"})
}

func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	target := CleanIdentifier(c.Param("username"))

	if err := h.friends.RemoveFriend(c.Request.Context(), username, target); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	friends, err := h.friends.GetFriends(c.Request.Context(), username)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(friends))
}

func (h *FriendHandler) ListFriendRequests(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	requests, err := h.friends.GetFriendRequests(c.Request.Context(), username)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(requests))
}
