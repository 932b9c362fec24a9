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

type RateController struct {
	rateService   services.RateServiceInterface
	exportService services.ExportServiceInterface
	logger        *zap.Logger
}

func NewRateController(
	rateService services.RateServiceInterface,
	exportService services.ExportServiceInterface,
	logger *zap.Logger,
) *RateController {
	return &RateController{rateService: rateService, exportService: exportService, logger: logger}
}

func transportQuery(c echo.Context) services.TransportRateQuery {
	return services.TransportRateQuery{
		OriginZip:      c.QueryParam("originZip"),
		DestinationZip: c.QueryParam("destinationZip"),
	}
}

func (ctrl *RateController) GetTransportRates(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "originZoneId", "destinationZoneId")

	rates, total, err := ctrl.rateService.GetTransportRates(c.Request().Context(), filter, transportQuery(c))
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "transport rates", rates, total, filter.Page, filter.PageSize)
}

func (ctrl *RateController) ExportTransportRates(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "originZoneId", "destinationZoneId")

	f, err := ctrl.exportService.ExportTransportRates(c.Request().Context(), filter, transportQuery(c))
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return writeXLSX(c, f, "transport_rates")
}

func (ctrl *RateController) FindTransportRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	rate, err := ctrl.rateService.FindTransportRate(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "transport rate", rate)
}

func (ctrl *RateController) CreateTransportRate(c echo.Context) error {
	var payload dto.CreateTransportRateDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	rate, err := ctrl.rateService.CreateTransportRate(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "transport rate created", rate)
}

func (ctrl *RateController) UpdateTransportRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateTransportRateDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	rate, err := ctrl.rateService.UpdateTransportRate(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "transport rate updated", rate)
}

func (ctrl *RateController) DeleteTransportRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.rateService.DeleteTransportRate(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *RateController) GetWarehouseRates(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "department", "warehouse")

	rates, total, err := ctrl.rateService.GetWarehouseRates(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "warehouse rates", rates, total, filter.Page, filter.PageSize)
}

func (ctrl *RateController) FindWarehouseRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	rate, err := ctrl.rateService.FindWarehouseRate(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "warehouse rate", rate)
}

func (ctrl *RateController) CreateWarehouseRate(c echo.Context) error {
	var payload dto.CreateWarehouseRateDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	rate, err := ctrl.rateService.CreateWarehouseRate(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "warehouse rate created", rate)
}

func (ctrl *RateController) UpdateWarehouseRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateWarehouseRateDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	rate, err := ctrl.rateService.UpdateWarehouseRate(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "warehouse rate updated", rate)
}

func (ctrl *RateController) DeleteWarehouseRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.rateService.DeleteWarehouseRate(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}
