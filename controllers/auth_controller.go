package controllers

import (
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/resp"
	"github.com/23CSE311-SeeFood/seeFood-Backend/services"
	"github.com/23CSE311-SeeFood/seeFood-Backend/utils"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req validators.RegisterRequest
	if !bindBody(c, &req) {
		return
	}

	result, err := a.Service.Register(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, result)
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req validators.LoginRequest
	if !bindBody(c, &req) {
		return
	}

	result, err := a.Service.Login(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, result)
}

// GET /auth/me (bearer token)
func (a *AuthController) Me(c *gin.Context) {
	student, err := a.Service.GetProfile(c.Request.Context(), utils.CurrentStudentID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, student)
}
