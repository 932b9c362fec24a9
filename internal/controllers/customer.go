package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/services"
	"freight-admin/pkg/api"
	"freight-admin/pkg/utils"
)

type CustomerController struct {
	customerService services.CustomerServiceInterface
	exportService   services.ExportServiceInterface
	logger          *zap.Logger
}

func NewCustomerController(
	customerService services.CustomerServiceInterface,
	exportService services.ExportServiceInterface,
	logger *zap.Logger,
) *CustomerController {
	return &CustomerController{
		customerService: customerService,
		exportService:   exportService,
		logger:          logger,
	}
}

func (ctrl *CustomerController) GetCustomers(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "rmAccountNumber")

	customers, total, err := ctrl.customerService.GetCustomers(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessList(c, "customers", customers, total, filter.Page, filter.PageSize)
}

func (ctrl *CustomerController) FindCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	customer, err := ctrl.customerService.FindCustomer(c.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "customer", customer)
}

func (ctrl *CustomerController) CreateCustomer(c echo.Context) error {
	var payload dto.CreateCustomerDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	customer, err := ctrl.customerService.CreateCustomer(c.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "customer created", customer)
}

func (ctrl *CustomerController) UpdateCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateCustomerDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}

	customer, err := ctrl.customerService.UpdateCustomer(c.Request().Context(), id, payload)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "customer updated", customer)
}

func (ctrl *CustomerController) DeleteCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	if err := ctrl.customerService.DeleteCustomer(c.Request().Context(), id); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *CustomerController) ExportCustomers(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), "rmAccountNumber")

	f, err := ctrl.exportService.ExportCustomers(c.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return writeXLSX(c, f, "customers")
}

// writeXLSX streams the workbook as an attachment.
func writeXLSX(c echo.Context, f *excelize.File, prefix string) error {
	defer f.Close()

	fileName := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
