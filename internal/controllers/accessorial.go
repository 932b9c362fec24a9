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

type AccessorialController struct {
	accessorialService services.AccessorialServiceInterface
	logger             *zap.Logger
}

func NewAccessorialController(accessorialService services.AccessorialServiceInterface, logger *zap.Logger) *AccessorialController {
	return &AccessorialController{accessorialService: accessorialService, logger: logger}
}

func (ctrl *AccessorialController) GetAccessorials(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())

	list, total, err := ctrl.accessorialService.GetAccessorials(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "accessorials", list, total, filter.Page, filter.PageSize)
}

func (ctrl *AccessorialController) FindAccessorial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	accessorial, err := ctrl.accessorialService.FindAccessorial(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "accessorial", accessorial)
}

func (ctrl *AccessorialController) CreateAccessorial(c echo.Context) error {
	var payload dto.CreateAccessorialDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	accessorial, err := ctrl.accessorialService.CreateAccessorial(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "accessorial created", accessorial)
}

func (ctrl *AccessorialController) UpdateAccessorial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateAccessorialDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	accessorial, err := ctrl.accessorialService.UpdateAccessorial(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "accessorial updated", accessorial)
}

func (ctrl *AccessorialController) DeleteAccessorial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.accessorialService.DeleteAccessorial(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *AccessorialController) GetEntityAccessorials(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "ownerEntityId", "accessorialId", "chargeType")

	list, total, err := ctrl.accessorialService.GetEntityAccessorials(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "entity accessorials", list, total, filter.Page, filter.PageSize)
}

func (ctrl *AccessorialController) FindEntityAccessorial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	charge, err := ctrl.accessorialService.FindEntityAccessorial(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "entity accessorial", charge)
}

func (ctrl *AccessorialController) CreateEntityAccessorial(c echo.Context) error {
	var payload dto.CreateEntityAccessorialDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	charge, err := ctrl.accessorialService.CreateEntityAccessorial(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "entity accessorial created", charge)
}

func (ctrl *AccessorialController) UpdateEntityAccessorial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateEntityAccessorialDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	charge, err := ctrl.accessorialService.UpdateEntityAccessorial(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "entity accessorial updated", charge)
}

func (ctrl *AccessorialController) DeleteEntityAccessorial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.accessorialService.DeleteEntityAccessorial(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}
