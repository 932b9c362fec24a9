package routes

import (
	"github.com/labstack/echo/v4"

	"freight-admin/internal/authz"
	"freight-admin/internal/controllers"
	"freight-admin/pkg/middleware"
)

func runStationRouter(secure *echo.Group, stationCtrl *controllers.StationController, departmentCtrl *controllers.DepartmentController, authMW *middleware.AuthMiddleware) {
	stations := secure.Group("/stations")
	stations.GET("", stationCtrl.GetStations, authMW.RequirePermission(authz.ViewStation))
	stations.GET("/:id", stationCtrl.FindStation, authMW.RequirePermission(authz.ViewStation))
	stations.POST("", stationCtrl.CreateStation, authMW.RequirePermission(authz.ManageStation))
	stations.PUT("/:id", stationCtrl.UpdateStation, authMW.RequirePermission(authz.ManageStation))
	stations.DELETE("/:id", stationCtrl.DeleteStation, authMW.RequirePermission(authz.ManageStation))

	stations.GET("/:id/rates", stationCtrl.ListRates, authMW.RequirePermission(authz.ViewStation, authz.ViewRate))
	stations.POST("/:id/rates", stationCtrl.AssignRate, authMW.RequirePermission(authz.ManageRate))
	stations.DELETE("/:id/rates/:stationRateId", stationCtrl.DeleteRate, authMW.RequirePermission(authz.ManageRate))

	departments := secure.Group("/departments")
	departments.GET("", departmentCtrl.GetDepartments, authMW.RequirePermission(authz.ViewDepartment))
	departments.GET("/:id", departmentCtrl.FindDepartment, authMW.RequirePermission(authz.ViewDepartment))
	departments.POST("", departmentCtrl.CreateDepartment, authMW.RequirePermission(authz.ManageDepartment))
	departments.PUT("/:id", departmentCtrl.UpdateDepartment, authMW.RequirePermission(authz.ManageDepartment))
	departments.DELETE("/:id", departmentCtrl.DeleteDepartment, authMW.RequirePermission(authz.ManageDepartment))
}
