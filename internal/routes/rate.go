package routes

import (
	"github.com/labstack/echo/v4"

	"freight-admin/internal/authz"
	"freight-admin/internal/controllers"
	"freight-admin/pkg/middleware"
)

func runRateRouter(secure *echo.Group, zoneCtrl *controllers.ZoneController, rateCtrl *controllers.RateController, authMW *middleware.AuthMiddleware) {
	viewZone := authMW.RequirePermission(authz.ViewZone)
	manageZone := authMW.RequirePermission(authz.ManageZone)

	zones := secure.Group("/zones")
	zones.GET("", zoneCtrl.GetZones, viewZone)
	zones.GET("/resolve", zoneCtrl.ResolveZones, viewZone)
	zones.GET("/:id", zoneCtrl.FindZone, viewZone)
	zones.POST("", zoneCtrl.CreateZone, manageZone)
	zones.PUT("/:id", zoneCtrl.UpdateZone, manageZone)
	zones.DELETE("/:id", zoneCtrl.DeleteZone, manageZone)
	zones.GET("/:id/zips", zoneCtrl.ListZips, viewZone)
	zones.POST("/:id/zips", zoneCtrl.AddZip, manageZone)
	zones.DELETE("/:id/zips/:zipId", zoneCtrl.DeleteZip, manageZone)

	viewRate := authMW.RequirePermission(authz.ViewRate)
	manageRate := authMW.RequirePermission(authz.ManageRate)

	transport := secure.Group("/rates/transport")
	transport.GET("", rateCtrl.GetTransportRates, viewRate)
	transport.GET("/export", rateCtrl.ExportTransportRates, viewRate)
	transport.GET("/:id", rateCtrl.FindTransportRate, viewRate)
	transport.POST("", rateCtrl.CreateTransportRate, manageRate)
	transport.PUT("/:id", rateCtrl.UpdateTransportRate, manageRate)
	transport.DELETE("/:id", rateCtrl.DeleteTransportRate, manageRate)

	warehouse := secure.Group("/rates/warehouse")
	warehouse.GET("", rateCtrl.GetWarehouseRates, viewRate)
	warehouse.GET("/:id", rateCtrl.FindWarehouseRate, viewRate)
	warehouse.POST("", rateCtrl.CreateWarehouseRate, manageRate)
	warehouse.PUT("/:id", rateCtrl.UpdateWarehouseRate, manageRate)
	warehouse.DELETE("/:id", rateCtrl.DeleteWarehouseRate, manageRate)
}
