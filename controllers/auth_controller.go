package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/smartZeee/worker-side/pkg/resp"
	"github.com/smartZeee/worker-side/services"
	"github.com/smartZeee/worker-side/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth      *services.AuthService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(auth *services.AuthService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Auth: auth, JWTSecret: secret, JWTTTL: ttl}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := a.Auth.Resolve(req.EmployeeID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUnknownEmployee), errors.Is(err, services.ErrBadPassword):
			resp.Unauthorized(c, "incorrect employee id or password")
		case errors.Is(err, services.ErrAccountInactive):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	token, err := utils.GenerateToken(session.EmployeeID, session.Role, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"token":   token,
		"session": session,
	})
}

// GET /auth/session (ต้องมี token เดิม)
// client ใช้ตอน reload หน้า: เช็คว่าพนักงานยังอยู่/ยัง active แล้วออก token ใหม่
func (a *AuthController) Session(c *gin.Context) {
	session, err := a.Auth.Revalidate(utils.CurrentEmployeeID(c))
	if err != nil {
		// client ต้องเคลียร์ session ที่ cache ไว้แล้ว login ใหม่
		resp.Unauthorized(c, "session is no longer valid")
		return
	}

	token, err := utils.GenerateToken(session.EmployeeID, session.Role, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"token":   token,
		"session": session,
	})
}
