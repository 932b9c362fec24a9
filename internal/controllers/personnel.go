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

type PersonnelController struct {
	personnelService services.PersonnelServiceInterface
	logger           *zap.Logger
}

func NewPersonnelController(personnelService services.PersonnelServiceInterface, logger *zap.Logger) *PersonnelController {
	return &PersonnelController{personnelService: personnelService, logger: logger}
}

func (ctrl *PersonnelController) GetPersonnel(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "customerId")

	personnel, total, err := ctrl.personnelService.GetPersonnel(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "personnel", personnel, total, filter.Page, filter.PageSize)
}

func (ctrl *PersonnelController) FindPersonnel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	person, err := ctrl.personnelService.FindPersonnel(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "personnel", person)
}

func (ctrl *PersonnelController) CreatePersonnel(c echo.Context) error {
	var payload dto.CreatePersonnelDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	person, err := ctrl.personnelService.CreatePersonnel(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "personnel created", person)
}

func (ctrl *PersonnelController) UpdatePersonnel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdatePersonnelDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	person, err := ctrl.personnelService.UpdatePersonnel(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "personnel updated", person)
}

func (ctrl *PersonnelController) DeletePersonnel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.personnelService.DeletePersonnel(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}
