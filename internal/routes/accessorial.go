package routes

import (
	"github.com/labstack/echo/v4"

	"freight-admin/internal/authz"
	"freight-admin/internal/controllers"
	"freight-admin/pkg/middleware"
)

func runAccessorialRouter(secure *echo.Group, ctrl *controllers.AccessorialController, authMW *middleware.AuthMiddleware) {
	view := authMW.RequirePermission(authz.ViewAccessorial)
	manage := authMW.RequirePermission(authz.ManageAccessorial)

	accessorials := secure.Group("/accessorials")
	accessorials.GET("", ctrl.GetAccessorials, view)
	accessorials.GET("/:id", ctrl.FindAccessorial, view)
	accessorials.POST("", ctrl.CreateAccessorial, manage)
	accessorials.PUT("/:id", ctrl.UpdateAccessorial, manage)
	accessorials.DELETE("/:id", ctrl.DeleteAccessorial, manage)

	charges := secure.Group("/entity-accessorials")
	charges.GET("", ctrl.GetEntityAccessorials, view)
	charges.GET("/:id", ctrl.FindEntityAccessorial, view)
	charges.POST("", ctrl.CreateEntityAccessorial, manage)
	charges.PUT("/:id", ctrl.UpdateEntityAccessorial, manage)
	charges.DELETE("/:id", ctrl.DeleteEntityAccessorial, manage)
}
