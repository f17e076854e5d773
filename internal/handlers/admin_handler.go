package handlers

import (
	"net/http"

	"quicktweet_backend/internal/services"
	"quicktweet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - операции модерации: очередь регистраций, роли, удаление аккаунтов
type AdminHandler struct {
	*BaseHandler
	accounts      services.AccountService
	authorization services.AuthorizationService
}

func NewAdminHandler(base *BaseHandler, accounts services.AccountService, authorization services.AuthorizationService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		accounts:      accounts,
		authorization: authorization,
	}
}

func (h *AdminHandler) ListPendingRequests(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	pending, err := h.authorization.GetPendingRequests(c.Request.Context(), username)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(pending))
}

func (h *AdminHandler) ApproveRegistration(c *gin.Context) {
	target := CleanIdentifier(c.Param("username"))

	if err := h.accounts.Approve(c.Request.Context(), target); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration approved"})
}

func (h *AdminHandler) RejectRegistration(c *gin.Context) {
	target := CleanIdentifier(c.Param("username"))

	if err := h.accounts.Reject(c.Request.Context(), target); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration rejected"})
}

// ToggleUserRole переключает роль USER <-> ADMIN
func (h *AdminHandler) ToggleUserRole(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	role, err := h.accounts.UpdateUserRole(c.Request.Context(), username, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated", "role": role})
}

func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.accounts.DeleteAccount(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
