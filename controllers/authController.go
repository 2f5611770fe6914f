package controllers

import (
	"github.com/gin-gonic/gin"

	"ClinicaAdmin/handlers"
	"ClinicaAdmin/middlewares"
	"ClinicaAdmin/models"
)

type AuthController struct {
	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler
}

func NewAuthController(authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler) *AuthController {
	return &AuthController{authHandler: authHandler, userHandler: userHandler}
}

// RegisterRoutes wires the auth endpoints and the Admin-only user management
// surface. Login is the only route outside the session gate.
func (ac *AuthController) RegisterRoutes(router *gin.Engine, authenticated *gin.RouterGroup) {
	router.POST("/auth/login", ac.authHandler.Login)
	authenticated.POST("/auth/logout", ac.authHandler.Logout)
	authenticated.POST("/auth/logout/all", middlewares.RoleAuthMiddleware(models.RoleAdmin), ac.authHandler.LogoutAll)

	users := authenticated.Group("/users", middlewares.RoleAuthMiddleware(models.RoleAdmin))
	users.POST("", ac.userHandler.CreateUser)
	users.GET("", ac.userHandler.GetAllUsers)
	users.GET("/:id", ac.userHandler.GetUserByID)
	users.PUT("/:id", ac.userHandler.UpdateUser)
	users.DELETE("/:id", ac.userHandler.DeleteUser)
}
