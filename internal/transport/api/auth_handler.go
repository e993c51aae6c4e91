package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	UserID   string `binding:"required,min=1,max=128"  json:"user_id"`
	Password string `binding:"required,min=1,max=255" json:"password"`
}

// Register POST AuthRouteGroup + RegisterRoute. Регистрирует пользователя и
// сразу аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"message": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		UserID:   params.UserID,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.Error(createErr).SetType(gin.ErrorTypePrivate)
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"message": "user already exists"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type UserLoginParams struct {
	UserID   string `binding:"required,min=1,max=128"  json:"user_id"`
	Password string `binding:"required,min=1,max=255" json:"password"`
}

// Login POST AuthRouteGroup + LoginRoute. Аутентификация по паре
// user_id/пароль, токен уходит и в заголовок, и в тело (исторический формат
// клиентов).
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		UserID:   params.UserID,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"message": "ok", "token": token})
}

type UserLogoutParams struct {
	UserID string `binding:"required,min=1,max=128" json:"user_id"`
	Token  string `binding:"required"               json:"token"`
}

// Logout POST AuthRouteGroup + LogoutRoute. Подтверждает завершение сессии:
// токен проверяется и после успешного ответа должен быть отброшен клиентом.
func (h *AuthHandler) Logout(c *gin.Context) {
	var params UserLogoutParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userService.Logout(ctx, params.UserID, params.Token); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type ChangePasswordParams struct {
	UserID      string `binding:"required,min=1,max=128" json:"user_id"`
	OldPassword string `binding:"required,min=1,max=255" json:"oldPassword"`
	NewPassword string `binding:"required,min=1,max=255" json:"newPassword"`
}

// ChangePassword POST AuthRouteGroup + PasswordRoute.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var params ChangePasswordParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userService.ChangePassword(ctx, params.UserID, params.OldPassword, params.NewPassword); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type UnregisterParams struct {
	UserID   string `binding:"required,min=1,max=128" json:"user_id"`
	Password string `binding:"required,min=1,max=255" json:"password"`
}

// Unregister POST AuthRouteGroup + UnregisterRoute. Удаляет аккаунт.
func (h *AuthHandler) Unregister(c *gin.Context) {
	var params UnregisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userService.Unregister(ctx, params.UserID, params.Password); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
