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

type DepartmentController struct {
	departmentService services.DepartmentServiceInterface
	logger            *zap.Logger
}

func NewDepartmentController(departmentService services.DepartmentServiceInterface, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{departmentService: departmentService, logger: logger}
}

func (ctrl *DepartmentController) GetDepartments(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "stationId")

	departments, total, err := ctrl.departmentService.GetDepartments(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "departments", departments, total, filter.Page, filter.PageSize)
}

func (ctrl *DepartmentController) FindDepartment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	department, err := ctrl.departmentService.FindDepartment(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "department", department)
}

func (ctrl *DepartmentController) CreateDepartment(c echo.Context) error {
	var payload dto.CreateDepartmentDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	department, err := ctrl.departmentService.CreateDepartment(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "department created", department)
}

func (ctrl *DepartmentController) UpdateDepartment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateDepartmentDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	department, err := ctrl.departmentService.UpdateDepartment(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "department updated", department)
}

func (ctrl *DepartmentController) DeleteDepartment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.departmentService.DeleteDepartment(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}
