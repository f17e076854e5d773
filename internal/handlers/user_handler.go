package handlers

import (
	"net/http"

	"quicktweet_backend/internal/appErrors"
	"quicktweet_backend/internal/services"
	"quicktweet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService services.AuthService
	userService services.UserService
	accounts    services.AccountService
}

func NewUserHandler(base *BaseHandler, authService services.AuthService, userService services.UserService, accounts services.AccountService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		authService: authService,
		userService: userService,
		accounts:    accounts,
	}
}

// Register создаёт заявку на регистрацию. Аккаунт остаётся в очереди
// до одобрения администратором.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration submitted, awaiting approval",
		"user":    dto.ToUserResponse(user),
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), username, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) GetStatus(c *gin.Context) {
	target := CleanIdentifier(c.Param("username"))

	status, err := h.userService.GetStatus(c.Request.Context(), target)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": target, "status": status})
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	username, ok := h.GetAuthorizedUsername(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.UpdateStatus(c.Request.Context(), username, req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	target := CleanIdentifier(c.Param("username"))
	if target == "" {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Username must not be empty"))
		return
	}

	user, err := h.userService.GetByUsername(c.Request.Context(), target)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := CleanIdentifier(c.Query("q"))
	if query == "" {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Query parameter 'q' must not be empty"))
		return
	}

	users, err := h.userService.SearchByUsername(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *UserHandler) GetByInterests(c *gin.Context) {
	interests := c.QueryArray("interest")
	if len(interests) == 0 {
		appErrors.HandleError(c, appErrors.NewBadRequestError("At least one 'interest' query parameter is required"))
		return
	}
	for i := range interests {
		interests[i] = CleanIdentifier(interests[i])
	}

	users, err := h.userService.GetByInterests(c.Request.Context(), interests)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}
