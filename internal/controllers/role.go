package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/services"
	"freight-admin/pkg/api"
	"freight-admin/pkg/utils"
)

type RoleController struct {
	roleService       services.RoleServiceInterface
	permissionService services.PermissionServiceInterface
	logger            *zap.Logger
}

func NewRoleController(
	roleService services.RoleServiceInterface,
	permissionService services.PermissionServiceInterface,
	logger *zap.Logger,
) *RoleController {
	return &RoleController{roleService: roleService, permissionService: permissionService, logger: logger}
}

func (ctrl *RoleController) GetRoles(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())

	roles, total, err := ctrl.roleService.GetRoles(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "roles", roles, total, filter.Page, filter.PageSize)
}

func (ctrl *RoleController) FindRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	role, err := ctrl.roleService.FindRole(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "role", role)
}

func (ctrl *RoleController) CreateRole(c echo.Context) error {
	var payload dto.CreateRoleDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	role, err := ctrl.roleService.CreateRole(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "role created", role)
}

func (ctrl *RoleController) UpdateRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateRoleDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	role, err := ctrl.roleService.UpdateRole(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "role updated", role)
}

func (ctrl *RoleController) DeleteRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.roleService.DeleteRole(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *RoleController) GetPermissions(c echo.Context) error {
	permissions, err := ctrl.permissionService.GetAllPermissions(c.Request().Context())
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "permissions", permissions)
}

func (ctrl *RoleController) GetGroupedPermissions(c echo.Context) error {
	grouped, err := ctrl.permissionService.GetGroupedPermissions(c.Request().Context())
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "permissions", grouped)
}
