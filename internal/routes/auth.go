package routes

import (
	"github.com/labstack/echo/v4"

	"freight-admin/internal/controllers"
	"freight-admin/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh", authCtrl.Refresh)
		authGroup.POST("/logout", authCtrl.Logout, authMW.Auth)
		authGroup.POST("/logout/token", authCtrl.RevokeToken, authMW.Auth)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
