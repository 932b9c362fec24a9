package routes

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"freight-admin/internal/controllers"
	"freight-admin/internal/repositories"
	"freight-admin/internal/services"
	"freight-admin/pkg/config"
	"freight-admin/pkg/metrics"
	"freight-admin/pkg/middleware"
	"freight-admin/pkg/service"
)

// Controllers holds every HTTP handler set mounted by Register.
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Role        *controllers.RoleController
	Customer    *controllers.CustomerController
	Station     *controllers.StationController
	Department  *controllers.DepartmentController
	Personnel   *controllers.PersonnelController
	Attachment  *controllers.AttachmentController
	Accessorial *controllers.AccessorialController
	Zone        *controllers.ZoneController
	Rate        *controllers.RateController
	Health      *controllers.HealthController
}

type redisPinger struct{ client *redis.Client }

func (p redisPinger) Ping(ctx context.Context) error { return p.client.Ping(ctx).Err() }

// BuildControllers wires repositories, services and controllers on top of
// the shared pool and redis client.
func BuildControllers(
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	authPermissionService services.AuthPermissionServiceInterface,
	m *metrics.Metrics,
	cfg *config.Config,
	logger *zap.Logger,
) *Controllers {
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	entityRepo := repositories.NewEntityRepository(dbConn)
	noteRepo := repositories.NewNoteRepository(dbConn)
	addressRepo := repositories.NewAddressRepository(dbConn)
	customerRepo := repositories.NewCustomerRepository(dbConn, logger)
	stationRepo := repositories.NewStationRepository(dbConn)
	departmentRepo := repositories.NewDepartmentRepository(dbConn)
	personnelRepo := repositories.NewPersonnelRepository(dbConn)
	accessorialRepo := repositories.NewAccessorialRepository(dbConn)
	entityAccessorialRepo := repositories.NewEntityAccessorialRepository(dbConn)
	zoneRepo := repositories.NewZoneRepository(dbConn)
	rateRepo := repositories.NewRateRepository(dbConn)
	stationRateRepo := repositories.NewStationRateRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	roleRepo := repositories.NewRoleRepository(dbConn)
	permissionRepo := repositories.NewPermissionRepository(dbConn)

	composer := services.NewEntityComposer(txManager, entityRepo, noteRepo, addressRepo, m, logger)
	tokenStore := services.NewTokenStore(cacheRepo)

	customerService := services.NewCustomerService(customerRepo, composer, logger)
	stationService := services.NewStationService(stationRepo, customerRepo, composer, logger)
	departmentService := services.NewDepartmentService(departmentRepo, stationRepo, composer, logger)
	personnelService := services.NewPersonnelService(personnelRepo, customerRepo, composer, logger)
	noteService := services.NewNoteService(noteRepo, logger)
	addressService := services.NewAddressService(addressRepo, entityRepo, logger)
	accessorialService := services.NewAccessorialService(accessorialRepo, entityAccessorialRepo, entityRepo, composer, logger)
	zoneService := services.NewZoneService(zoneRepo, logger)
	rateService := services.NewRateService(txManager, rateRepo, zoneRepo, stationRepo, stationRateRepo, logger)
	exportService := services.NewExportService(customerService, rateService, logger)
	userService := services.NewUserService(userRepo, roleRepo, tokenStore, logger)
	roleService := services.NewRoleService(txManager, roleRepo, permissionRepo, authPermissionService, logger)
	permissionService := services.NewPermissionService(permissionRepo, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, tokenStore, jwtSvc, authPermissionService, logger, &cfg.Auth)

	return &Controllers{
		Auth:        controllers.NewAuthController(authService, logger),
		User:        controllers.NewUserController(userService, logger),
		Role:        controllers.NewRoleController(roleService, permissionService, logger),
		Customer:    controllers.NewCustomerController(customerService, exportService, logger),
		Station:     controllers.NewStationController(stationService, rateService, logger),
		Department:  controllers.NewDepartmentController(departmentService, logger),
		Personnel:   controllers.NewPersonnelController(personnelService, logger),
		Attachment:  controllers.NewAttachmentController(noteService, addressService, logger),
		Accessorial: controllers.NewAccessorialController(accessorialService, logger),
		Zone:        controllers.NewZoneController(zoneService, logger),
		Rate:        controllers.NewRateController(rateService, exportService, logger),
		Health: controllers.NewHealthController(map[string]controllers.Pinger{
			"postgres": dbConn,
			"redis":    redisPinger{client: redisClient},
		}, logger),
	}
}

// InitRouter mounts the whole API on e.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	authPermissionService services.AuthPermissionServiceInterface,
	m *metrics.Metrics,
	cfg *config.Config,
	logger *zap.Logger,
) {
	ctrls := BuildControllers(dbConn, redisClient, jwtSvc, authPermissionService, m, cfg, logger)
	authMW := middleware.NewAuthMiddleware(jwtSvc, authPermissionService, logger)
	Register(e, ctrls, authMW, m)
	logger.Info("routes registered", zap.Int("count", len(e.Routes())))
}

// Register attaches the route table. Every /api route except login and
// refresh goes through authMW.Auth.
func Register(e *echo.Echo, ctrls *Controllers, authMW *middleware.AuthMiddleware, m *metrics.Metrics) {
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}
	if ctrls.Health != nil {
		e.GET("/health", ctrls.Health.Health)
	}

	api := e.Group("/api")
	runAuthRouter(api, ctrls.Auth, authMW)

	secure := api.Group("", authMW.Auth)
	runMaintenanceRouter(secure, ctrls.User, ctrls.Role, authMW)
	runCustomerRouter(secure, ctrls.Customer, ctrls.Personnel, authMW)
	runStationRouter(secure, ctrls.Station, ctrls.Department, authMW)
	runAttachmentRouter(secure, ctrls.Attachment, authMW)
	runAccessorialRouter(secure, ctrls.Accessorial, authMW)
	runRateRouter(secure, ctrls.Zone, ctrls.Rate, authMW)
}
