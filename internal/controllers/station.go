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

type StationController struct {
	stationService services.StationServiceInterface
	rateService    services.RateServiceInterface
	logger         *zap.Logger
}

func NewStationController(
	stationService services.StationServiceInterface,
	rateService services.RateServiceInterface,
	logger *zap.Logger,
) *StationController {
	return &StationController{stationService: stationService, rateService: rateService, logger: logger}
}

func (ctrl *StationController) GetStations(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "customerId")

	stations, total, err := ctrl.stationService.GetStations(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "stations", stations, total, filter.Page, filter.PageSize)
}

func (ctrl *StationController) FindStation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	station, err := ctrl.stationService.FindStation(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "station", station)
}

func (ctrl *StationController) CreateStation(c echo.Context) error {
	var payload dto.CreateStationDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	station, err := ctrl.stationService.CreateStation(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "station created", station)
}

func (ctrl *StationController) UpdateStation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateStationDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	station, err := ctrl.stationService.UpdateStation(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "station updated", station)
}

func (ctrl *StationController) DeleteStation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.stationService.DeleteStation(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *StationController) AssignRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.AssignStationRateDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	assignment, err := ctrl.rateService.AssignStationRate(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "rate assigned", assignment)
}

func (ctrl *StationController) ListRates(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	assignments, err := ctrl.rateService.ListStationRates(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "station rates", assignments)
}

func (ctrl *StationController) DeleteRate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	stationRateID, err := parseID(c, "stationRateId")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.rateService.DeleteStationRate(c.Request().Context(), id, stationRateID); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}
