package routes

import (
	"github.com/labstack/echo/v4"

	"freight-admin/internal/authz"
	"freight-admin/internal/controllers"
	"freight-admin/pkg/middleware"
)

func runAttachmentRouter(secure *echo.Group, attachmentCtrl *controllers.AttachmentController, authMW *middleware.AuthMiddleware) {
	secure.GET("/notes/:threadId", attachmentCtrl.ListNotes, authMW.RequirePermission(authz.ViewNotes))
	secure.POST("/notes/:threadId", attachmentCtrl.AddNote, authMW.RequirePermission(authz.AddNotes))

	// Addresses hang off any composed entity.
	secure.GET("/entities/:entityId/addresses", attachmentCtrl.ListAddresses,
		authMW.RequirePermission(authz.ViewCustomer, authz.ViewStation, authz.ViewDepartment, authz.ViewPersonnel))
	secure.PUT("/addresses/:id/role", attachmentCtrl.UpdateAddressRole,
		authMW.RequirePermission(authz.UpdateCustomer, authz.ManageStation, authz.ManageDepartment, authz.ManagePersonnel))
}
