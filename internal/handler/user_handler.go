package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login обработчик для POST /api/userLogin: находит пользователя по email
// или регистрирует нового. Имя существующего пользователя не обновляется.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Require both name and email to login",
			"required": []string{"name", "email"},
		})
		return
	}

	user, err := h.AuthService.Login(req.Name, req.Email)
	if err != nil {
		h.internalError(c, "Login", err)
		return
	}

	h.log.Info("user_login",
		zap.Int("user_id", user.ID),
		zap.String("email", user.Email),
	)
	c.JSON(http.StatusOK, user.ToInfo())
}
