package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/services"
	"freight-admin/pkg/api"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/utils"
)

type ZoneController struct {
	zoneService services.ZoneServiceInterface
	logger      *zap.Logger
}

func NewZoneController(zoneService services.ZoneServiceInterface, logger *zap.Logger) *ZoneController {
	return &ZoneController{zoneService: zoneService, logger: logger}
}

func (ctrl *ZoneController) GetZones(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())

	zones, total, err := ctrl.zoneService.GetZones(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "zones", zones, total, filter.Page, filter.PageSize)
}

func (ctrl *ZoneController) FindZone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	zone, err := ctrl.zoneService.FindZone(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "zone", zone)
}

func (ctrl *ZoneController) CreateZone(c echo.Context) error {
	var payload dto.CreateZoneDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	zone, err := ctrl.zoneService.CreateZone(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "zone created", zone)
}

func (ctrl *ZoneController) UpdateZone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateZoneDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	zone, err := ctrl.zoneService.UpdateZone(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "zone updated", zone)
}

func (ctrl *ZoneController) DeleteZone(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.zoneService.DeleteZone(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *ZoneController) ListZips(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	zips, err := ctrl.zoneService.ListZips(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "zone zips", zips)
}

func (ctrl *ZoneController) AddZip(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.AddZoneZipDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	zip, err := ctrl.zoneService.AddZip(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "zip added", zip)
}

func (ctrl *ZoneController) DeleteZip(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	zipID, err := parseID(c, "zipId")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.zoneService.DeleteZip(c.Request().Context(), id, zipID); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResolveZones answers which zones cover ?zip=NNNNN.
func (ctrl *ZoneController) ResolveZones(c echo.Context) error {
	zip := c.QueryParam("zip")
	if zip == "" {
		return api.ErrorResponse(c, apperrors.NewBadRequestError("zip is required"), ctrl.logger)
	}
	zones, err := ctrl.zoneService.ResolveZones(c.Request().Context(), zip)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "zones", zones)
}
