package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"freight-admin/internal/repositories"
	"freight-admin/pkg/metrics"
	"freight-admin/pkg/utils"
)

type harness struct {
	store        *memStore
	tx           *fakeTxManager
	entityRepo   *fakeEntityRepo
	noteRepo     *fakeNoteRepo
	addressRepo  *fakeAddressRepo
	customerRepo *fakeCustomerRepo
	stationRepo  *fakeStationRepo
	roleRepo     *fakeRoleRepo
	permRepo     *fakePermissionRepo
	userRepo     *fakeUserRepo

	departmentRepo        *fakeDepartmentRepo
	personnelRepo         *fakePersonnelRepo
	accessorialRepo       *fakeAccessorialRepo
	entityAccessorialRepo *fakeEntityAccessorialRepo
	zoneRepo              *fakeZoneRepo
	rateRepo              *fakeRateRepo
	stationRateRepo       *fakeStationRateRepo

	composer EntityComposerInterface
	logger   *zap.Logger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := newMemStore()
	h := &harness{
		store:        store,
		tx:           &fakeTxManager{store: store},
		entityRepo:   &fakeEntityRepo{store: store},
		noteRepo:     &fakeNoteRepo{store: store},
		addressRepo:  &fakeAddressRepo{store: store},
		customerRepo: &fakeCustomerRepo{store: store},
		stationRepo:  &fakeStationRepo{store: store},
		roleRepo:     &fakeRoleRepo{store: store},
		permRepo:     &fakePermissionRepo{store: store},
		userRepo:     &fakeUserRepo{store: store},
		logger:       zap.NewNop(),

		departmentRepo:        &fakeDepartmentRepo{store: store},
		personnelRepo:         &fakePersonnelRepo{store: store},
		accessorialRepo:       &fakeAccessorialRepo{store: store},
		entityAccessorialRepo: &fakeEntityAccessorialRepo{store: store},
		zoneRepo:              &fakeZoneRepo{store: store},
		rateRepo:              &fakeRateRepo{store: store},
		stationRateRepo:       &fakeStationRateRepo{store: store},
	}
	h.composer = NewEntityComposer(h.tx, h.entityRepo, h.noteRepo, h.addressRepo, metrics.New(), h.logger)
	return h
}

func newTestCache(t *testing.T) (repositories.CacheRepositoryInterface, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repositories.NewRedisCacheRepository(client), mr
}

func adminCtx() context.Context {
	return utils.WithActor(context.Background(), 7, 1, "admin")
}

var testTTL = 10 * time.Minute
