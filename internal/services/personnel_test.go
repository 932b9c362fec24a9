package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/utils"
)

func newPersonnelService(h *harness) PersonnelServiceInterface {
	return NewPersonnelService(h.personnelRepo, h.customerRepo, h.composer, h.logger)
}

func personnelPayload(customerID uint64, first, email string) dto.CreatePersonnelDTO {
	return dto.CreatePersonnelDTO{
		CustomerID:  customerID,
		FirstName:   first,
		LastName:    "Reyes",
		Email:       email,
		JobTitle:    utils.ToPtr("Dispatcher"),
		InitialNote: "Primary contact for pickups",
	}
}

func seedCustomer(t *testing.T, h *harness) uint64 {
	t.Helper()
	customer, err := newCustomerService(h).CreateCustomer(adminCtx(), acmePayload())
	require.NoError(t, err)
	return customer.CustomerID
}

func TestCreatePersonnel_ComposesPersonnelEntity(t *testing.T) {
	h := newHarness(t)
	customerID := seedCustomer(t, h)
	svc := newPersonnelService(h)

	payload := personnelPayload(customerID, "Dana", "  dana@acme.test ")
	payload.Addresses = []dto.AddressDTO{{AddressRole: "Primary", Line1: "9 Dock St", City: "Dallas", State: "TX", ZipCode: "75201"}}
	got, err := svc.CreatePersonnel(adminCtx(), payload)
	require.NoError(t, err)

	assert.Equal(t, "dana@acme.test", got.Email)
	assert.Equal(t, "Dispatcher", got.JobTitle.String)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "Primary contact for pickups", got.Notes[0].MessageText)
	require.Len(t, got.Addresses, 1)

	entity := h.store.entities[got.EntityID]
	assert.Equal(t, entities.EntityTypeCustomerPersonnel, entity.EntityType)
	assert.Equal(t, "Dana Reyes", entity.EntityName)
	assert.Equal(t, got.EntityID, h.store.threads[got.NoteThreadID].EntityID)
	assert.Equal(t, uint64(7), *got.CreatedBy)
}

func TestCreatePersonnel_DuplicateEmailIgnoresCase(t *testing.T) {
	h := newHarness(t)
	customerID := seedCustomer(t, h)
	svc := newPersonnelService(h)

	_, err := svc.CreatePersonnel(adminCtx(), personnelPayload(customerID, "Dana", "dana@acme.test"))
	require.NoError(t, err)
	entitiesBefore, runsBefore := len(h.store.entities), h.tx.runs

	for _, email := range []string{"dana@acme.test", "DANA@Acme.Test", " Dana@ACME.TEST "} {
		t.Run(email, func(t *testing.T) {
			_, err := svc.CreatePersonnel(adminCtx(), personnelPayload(customerID, "Other", email))

			var dup *apperrors.DuplicateError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, "email", dup.Field)

			status, code, _ := apperrors.Resolve(err)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, apperrors.CodeDuplicate, code)
		})
	}

	assert.Len(t, h.store.entities, entitiesBefore, "the pre-check runs before any write")
	assert.Equal(t, runsBefore, h.tx.runs)
	assert.Len(t, h.store.personnel, 1)
}

func TestCreatePersonnel_UnknownCustomerIsBadRequest(t *testing.T) {
	h := newHarness(t)
	svc := newPersonnelService(h)

	_, err := svc.CreatePersonnel(adminCtx(), personnelPayload(404, "Dana", "dana@acme.test"))

	var invalid *apperrors.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, invalid.Message, "customerId 404")
	assert.Empty(t, h.store.entities)
}

func TestUpdatePersonnel_EmailCaseVariants(t *testing.T) {
	h := newHarness(t)
	customerID := seedCustomer(t, h)
	svc := newPersonnelService(h)

	dana, err := svc.CreatePersonnel(adminCtx(), personnelPayload(customerID, "Dana", "dana@acme.test"))
	require.NoError(t, err)
	lee, err := svc.CreatePersonnel(adminCtx(), personnelPayload(customerID, "Lee", "lee@acme.test"))
	require.NoError(t, err)

	_, err = svc.UpdatePersonnel(adminCtx(), lee.PersonnelID, dto.UpdatePersonnelDTO{Email: utils.ToPtr("Dana@ACME.test")})
	var dup *apperrors.DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "email", dup.Field)
	assert.Equal(t, "lee@acme.test", h.store.personnel[lee.PersonnelID].Email)

	got, err := svc.UpdatePersonnel(adminCtx(), dana.PersonnelID, dto.UpdatePersonnelDTO{Email: utils.ToPtr("DANA@acme.test")})
	require.NoError(t, err, "changing only the case of your own email is allowed")
	assert.Equal(t, "DANA@acme.test", got.Email)
	assert.Equal(t, uint64(7), *got.UpdatedBy)
}
