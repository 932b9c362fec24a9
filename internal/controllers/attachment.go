package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	"freight-admin/internal/services"
	"freight-admin/pkg/api"
)

// AttachmentController serves the note threads and addresses shared by
// every composed entity.
type AttachmentController struct {
	noteService    services.NoteServiceInterface
	addressService services.AddressServiceInterface
	logger         *zap.Logger
}

func NewAttachmentController(
	noteService services.NoteServiceInterface,
	addressService services.AddressServiceInterface,
	logger *zap.Logger,
) *AttachmentController {
	return &AttachmentController{noteService: noteService, addressService: addressService, logger: logger}
}

func (ctrl *AttachmentController) ListNotes(c echo.Context) error {
	threadID, err := parseID(c, "threadId")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	messages, err := ctrl.noteService.ListMessages(c.Request().Context(), threadID)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "notes", messages)
}

func (ctrl *AttachmentController) AddNote(c echo.Context) error {
	threadID, err := parseID(c, "threadId")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.AddNoteDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	message, err := ctrl.noteService.AddMessage(c.Request().Context(), threadID, payload.MessageText)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusCreated, "note added", message)
}

func (ctrl *AttachmentController) ListAddresses(c echo.Context) error {
	entityID, err := parseID(c, "entityId")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	addresses, err := ctrl.addressService.ListByEntity(c.Request().Context(), entityID)
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "addresses", addresses)
}

func (ctrl *AttachmentController) UpdateAddressRole(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	var payload dto.UpdateAddressRoleDTO
	if err := bindAndValidate(c, &payload); err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	address, err := ctrl.addressService.UpdateRole(c.Request().Context(), id, entities.AddressRole(payload.AddressRole))
	if err != nil {
		return api.ErrorResponse(c, err, ctrl.logger)
	}
	return api.SuccessOne(c, http.StatusOK, "address updated", address)
}
