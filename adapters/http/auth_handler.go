package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/J33rry/predusk/internal/application/usecase/auth"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
	logger       logger.Logger
}

func NewAuthHandler(uc *authUC.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase: uc,
		logger:       log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid request body", err))
		return
	}
	if msgs := req.Validate(); len(msgs) > 0 {
		c.Error(apperror.NewInvalidInput(msgs[0], nil))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": output.AccessToken})
}
