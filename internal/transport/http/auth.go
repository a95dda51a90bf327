package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuilatri/Amazon-Clone/internal/domain"
	"github.com/tuilatri/Amazon-Clone/internal/service"
)

type AuthHandler struct {
	auth  *service.AuthSvc
	users *service.UserSvc
}

func NewAuthHandler(auth *service.AuthSvc, users *service.UserSvc) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type registerReq struct {
	Name     string `json:"user_name" binding:"required"`
	Email    string `json:"email_address" binding:"required"`
	Phone    string `json:"phone_number"`
	Password string `json:"password" binding:"required"`
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
	City     string `json:"city"`
	RoleID   int    `json:"role_id"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	u, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		City:     req.City,
		Role:     domain.Role(req.RoleID),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": u})
}

type loginReq struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	u, token, err := h.auth.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user_id":      u.ID,
		"user_name":    u.Name,
		"role":         u.Role.String(),
	})
}

type forgotPasswordReq struct {
	Email string `json:"email_address" binding:"required"`
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	if err := h.users.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "a reset code has been sent to your email"})
}

type resetPasswordReq struct {
	Email           string `json:"email_address" binding:"required"`
	Code            string `json:"code" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.Validation(err.Error()))
		return
	}
	if err := h.users.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword, req.ConfirmPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password has been reset"})
}
