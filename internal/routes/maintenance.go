package routes

import (
	"github.com/labstack/echo/v4"

	"freight-admin/internal/authz"
	"freight-admin/internal/controllers"
	"freight-admin/pkg/middleware"
)

func runMaintenanceRouter(secure *echo.Group, userCtrl *controllers.UserController, roleCtrl *controllers.RoleController, authMW *middleware.AuthMiddleware) {
	users := secure.Group("/users")
	users.GET("", userCtrl.GetUsers, authMW.RequirePermission(authz.ViewUser))
	users.GET("/:id", userCtrl.FindUser, authMW.RequirePermission(authz.ViewUser))
	users.POST("", userCtrl.CreateUser, authMW.RequirePermission(authz.CreateUser))
	users.PUT("/:id", userCtrl.UpdateUser, authMW.RequirePermission(authz.UpdateUser))
	users.PUT("/:id/password", userCtrl.ChangePassword, authMW.RequirePermission(authz.UpdateUser))
	users.DELETE("/:id", userCtrl.DeleteUser, authMW.RequirePermission(authz.DeleteUser))

	roles := secure.Group("/roles")
	roles.GET("", roleCtrl.GetRoles, authMW.RequirePermission(authz.ViewRole))
	roles.GET("/:id", roleCtrl.FindRole, authMW.RequirePermission(authz.ViewRole))
	roles.POST("", roleCtrl.CreateRole, authMW.RequirePermission(authz.CreateRole))
	roles.PUT("/:id", roleCtrl.UpdateRole, authMW.RequirePermission(authz.UpdateRole))
	roles.DELETE("/:id", roleCtrl.DeleteRole, authMW.RequirePermission(authz.DeleteRole))

	permissions := secure.Group("/permissions", authMW.RequirePermission(authz.ViewRole, authz.CreateRole, authz.UpdateRole))
	permissions.GET("", roleCtrl.GetPermissions)
	permissions.GET("/grouped", roleCtrl.GetGroupedPermissions)
}
