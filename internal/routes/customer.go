package routes

import (
	"github.com/labstack/echo/v4"

	"freight-admin/internal/authz"
	"freight-admin/internal/controllers"
	"freight-admin/pkg/middleware"
)

func runCustomerRouter(secure *echo.Group, customerCtrl *controllers.CustomerController, personnelCtrl *controllers.PersonnelController, authMW *middleware.AuthMiddleware) {
	customers := secure.Group("/customers")
	customers.GET("", customerCtrl.GetCustomers, authMW.RequirePermission(authz.ViewCustomer))
	customers.GET("/export", customerCtrl.ExportCustomers, authMW.RequirePermission(authz.ViewCustomer))
	customers.GET("/:id", customerCtrl.FindCustomer, authMW.RequirePermission(authz.ViewCustomer))
	customers.POST("", customerCtrl.CreateCustomer, authMW.RequirePermission(authz.CreateCustomer))
	customers.PUT("/:id", customerCtrl.UpdateCustomer, authMW.RequirePermission(authz.UpdateCustomer))
	customers.DELETE("/:id", customerCtrl.DeleteCustomer, authMW.RequirePermission(authz.DeleteCustomer))

	personnel := secure.Group("/personnel")
	personnel.GET("", personnelCtrl.GetPersonnel, authMW.RequirePermission(authz.ViewPersonnel))
	personnel.GET("/:id", personnelCtrl.FindPersonnel, authMW.RequirePermission(authz.ViewPersonnel))
	personnel.POST("", personnelCtrl.CreatePersonnel, authMW.RequirePermission(authz.ManagePersonnel))
	personnel.PUT("/:id", personnelCtrl.UpdatePersonnel, authMW.RequirePermission(authz.ManagePersonnel))
	personnel.DELETE("/:id", personnelCtrl.DeletePersonnel, authMW.RequirePermission(authz.ManagePersonnel))
}
