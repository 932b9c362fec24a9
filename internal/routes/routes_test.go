package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freight-admin/internal/authz"
	"freight-admin/internal/controllers"
	"freight-admin/internal/entities"
	"freight-admin/internal/services"
	"freight-admin/pkg/api"
	"freight-admin/pkg/customvalidator"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/metrics"
	"freight-admin/pkg/middleware"
	"freight-admin/pkg/service"
	"freight-admin/pkg/utils"
)

// rolePermissions maps role id to granted permission names.
type rolePermissions map[uint64][]string

func (r rolePermissions) GetRolePermissionsNames(_ context.Context, roleID uint64) ([]string, error) {
	return r[roleID], nil
}

type stubZones struct {
	services.ZoneServiceInterface
	resolved []entities.Zone
}

func (s stubZones) ResolveZones(context.Context, string) ([]entities.Zone, error) {
	return s.resolved, nil
}

const (
	roleViewer = 1
	roleNobody = 2
)

func newRouter(t *testing.T) (*echo.Echo, service.JWTService) {
	t.Helper()
	logger := zap.NewNop()

	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	jwtSvc := service.NewJWTService("access", "refresh", time.Minute, time.Hour)
	perms := rolePermissions{
		roleViewer: {authz.ViewZone, authz.CreateCustomer},
	}
	authMW := middleware.NewAuthMiddleware(jwtSvc, perms, logger)

	zones := stubZones{resolved: []entities.Zone{{ZoneID: 4, ZoneName: "Metro"}}}
	ctrls := &Controllers{
		Auth:        controllers.NewAuthController(nil, logger),
		User:        controllers.NewUserController(nil, logger),
		Role:        controllers.NewRoleController(nil, nil, logger),
		Customer:    controllers.NewCustomerController(nil, nil, logger),
		Station:     controllers.NewStationController(nil, nil, logger),
		Department:  controllers.NewDepartmentController(nil, logger),
		Personnel:   controllers.NewPersonnelController(nil, logger),
		Attachment:  controllers.NewAttachmentController(nil, nil, logger),
		Accessorial: controllers.NewAccessorialController(nil, logger),
		Zone:        controllers.NewZoneController(zones, logger),
		Rate:        controllers.NewRateController(nil, nil, logger),
	}
	Register(e, ctrls, authMW, metrics.New())
	return e, jwtSvc
}

func bearer(t *testing.T, jwtSvc service.JWTService, roleID uint64) string {
	t.Helper()
	pair, err := jwtSvc.GenerateTokens(service.TokenSubject{UserID: 11, UserName: "ops", RoleID: roleID})
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func serve(e *echo.Echo, method, target, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.ErrorBody {
	t.Helper()
	var body api.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_RequiresToken(t *testing.T) {
	e, _ := newRouter(t)

	for _, target := range []string{"/api/customers", "/api/rates/transport", "/api/users", "/api/auth/me"} {
		rec := serve(e, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, apperrors.CodeUnauthorized, decodeError(t, rec).Error, target)
	}
}

func TestRouter_MissingPermission(t *testing.T) {
	e, jwtSvc := newRouter(t)

	rec := serve(e, http.MethodGet, "/api/zones/resolve?zip=10001", bearer(t, jwtSvc, roleNobody), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apperrors.CodeForbidden, decodeError(t, rec).Error)
}

func TestRouter_GrantedPermissionReachesHandler(t *testing.T) {
	e, jwtSvc := newRouter(t)

	rec := serve(e, http.MethodGet, "/api/zones/resolve?zip=10001", bearer(t, jwtSvc, roleViewer), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool            `json:"success"`
		Data    []entities.Zone `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Metro", body.Data[0].ZoneName)
}

func TestRouter_ResolveWithoutZip(t *testing.T) {
	e, jwtSvc := newRouter(t)

	rec := serve(e, http.MethodGet, "/api/zones/resolve", bearer(t, jwtSvc, roleViewer), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperrors.CodeBadRequest, decodeError(t, rec).Error)
}

func TestRouter_ValidationEnvelope(t *testing.T) {
	e, jwtSvc := newRouter(t)

	rec := serve(e, http.MethodPost, "/api/customers", bearer(t, jwtSvc, roleViewer), `{"rmAccountNumber":"ACME001"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apperrors.CodeValidation, body.Error)
	assert.Equal(t, "required", body.Details["customerName"])
}

func TestRouter_BadPathID(t *testing.T) {
	e, jwtSvc := newRouter(t)
	token := bearer(t, jwtSvc, roleViewer)

	rec := serve(e, http.MethodGet, "/api/zones/abc", token, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_MetricsIsPublic(t *testing.T) {
	e, _ := newRouter(t)

	rec := serve(e, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
