package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"freight-admin/internal/entities"
	"freight-admin/internal/repositories"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

func sortedValues[V any](in map[uint64]V, keep func(V) bool) []V {
	ids := make([]uint64, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]V, 0, len(ids))
	for _, id := range ids {
		if keep(in[id]) {
			out = append(out, in[id])
		}
	}
	return out
}

type fakeDepartmentRepo struct{ store *memStore }

func (r *fakeDepartmentRepo) GetDepartments(_ context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	out := sortedValues(r.store.departments, func(d entities.Department) bool {
		if sid := filter.Filter["stationId"]; sid != "" && sid != strconv.FormatUint(d.StationID, 10) {
			return false
		}
		return isActive(d.ActiveStatus, filter)
	})
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeDepartmentRepo) FindDepartment(_ context.Context, id uint64) (*entities.Department, error) {
	d, ok := r.store.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDepartmentRepo) CreateDepartmentInTx(_ context.Context, _ pgx.Tx, d entities.Department) (uint64, error) {
	d.DepartmentID = r.store.nextID()
	d.ActiveStatus = types.ActiveStatusYes
	d.CreatedAt = r.store.now()
	r.store.departments[d.DepartmentID] = d
	return d.DepartmentID, nil
}

func (r *fakeDepartmentRepo) UpdateDepartmentInTx(_ context.Context, _ pgx.Tx, d entities.Department) error {
	if _, ok := r.store.departments[d.DepartmentID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.departments[d.DepartmentID] = d
	return nil
}

func (r *fakeDepartmentRepo) DeleteDepartment(_ context.Context, id uint64, actor *uint64) error {
	d, ok := r.store.departments[id]
	if !ok || d.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	d.ActiveStatus = types.ActiveStatusNo
	d.UpdatedBy = actor
	r.store.departments[id] = d
	return nil
}

type fakePersonnelRepo struct{ store *memStore }

func (r *fakePersonnelRepo) GetPersonnel(_ context.Context, filter types.Filter) ([]entities.CustomerPersonnel, uint64, error) {
	out := sortedValues(r.store.personnel, func(p entities.CustomerPersonnel) bool {
		return isActive(p.ActiveStatus, filter)
	})
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakePersonnelRepo) FindPersonnel(_ context.Context, id uint64) (*entities.CustomerPersonnel, error) {
	p, ok := r.store.personnel[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r *fakePersonnelRepo) FindByEmail(_ context.Context, email string) (*entities.CustomerPersonnel, error) {
	for _, p := range r.store.personnel {
		if strings.EqualFold(p.Email, email) {
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// CreatePersonnelInTx enforces the LOWER(email) unique index.
func (r *fakePersonnelRepo) CreatePersonnelInTx(ctx context.Context, _ pgx.Tx, p entities.CustomerPersonnel) (uint64, error) {
	if _, err := r.FindByEmail(ctx, p.Email); err == nil {
		return 0, apperrors.NewDuplicateError("email", p.Email)
	}
	p.PersonnelID = r.store.nextID()
	p.ActiveStatus = types.ActiveStatusYes
	p.CreatedAt = r.store.now()
	r.store.personnel[p.PersonnelID] = p
	return p.PersonnelID, nil
}

func (r *fakePersonnelRepo) UpdatePersonnelInTx(_ context.Context, _ pgx.Tx, p entities.CustomerPersonnel) error {
	if _, ok := r.store.personnel[p.PersonnelID]; !ok {
		return apperrors.ErrNotFound
	}
	for id, other := range r.store.personnel {
		if id != p.PersonnelID && strings.EqualFold(other.Email, p.Email) {
			return apperrors.NewDuplicateError("email", p.Email)
		}
	}
	r.store.personnel[p.PersonnelID] = p
	return nil
}

func (r *fakePersonnelRepo) DeletePersonnel(_ context.Context, id uint64, _ *uint64) error {
	p, ok := r.store.personnel[id]
	if !ok || p.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	p.ActiveStatus = types.ActiveStatusNo
	r.store.personnel[id] = p
	return nil
}

type fakeAccessorialRepo struct{ store *memStore }

func (r *fakeAccessorialRepo) GetAccessorials(_ context.Context, filter types.Filter) ([]entities.Accessorial, uint64, error) {
	out := sortedValues(r.store.accessorials, func(a entities.Accessorial) bool {
		return isActive(a.ActiveStatus, filter)
	})
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeAccessorialRepo) FindAccessorial(_ context.Context, id uint64) (*entities.Accessorial, error) {
	a, ok := r.store.accessorials[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAccessorialRepo) FindByName(_ context.Context, name string) (*entities.Accessorial, error) {
	for _, a := range r.store.accessorials {
		if a.AccessorialName == name {
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeAccessorialRepo) CreateAccessorial(_ context.Context, a entities.Accessorial) (uint64, error) {
	a.AccessorialID = r.store.nextID()
	a.ActiveStatus = types.ActiveStatusYes
	a.CreatedAt = r.store.now()
	r.store.accessorials[a.AccessorialID] = a
	return a.AccessorialID, nil
}

func (r *fakeAccessorialRepo) UpdateAccessorial(_ context.Context, a entities.Accessorial) error {
	if _, ok := r.store.accessorials[a.AccessorialID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.accessorials[a.AccessorialID] = a
	return nil
}

func (r *fakeAccessorialRepo) DeleteAccessorial(_ context.Context, id uint64, _ *uint64) error {
	a, ok := r.store.accessorials[id]
	if !ok || a.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	a.ActiveStatus = types.ActiveStatusNo
	r.store.accessorials[id] = a
	return nil
}

type fakeEntityAccessorialRepo struct{ store *memStore }

func (r *fakeEntityAccessorialRepo) GetEntityAccessorials(_ context.Context, filter types.Filter) ([]entities.EntityAccessorial, uint64, error) {
	out := sortedValues(r.store.entityCharges, func(ea entities.EntityAccessorial) bool {
		if owner := filter.Filter["ownerEntityId"]; owner != "" && owner != strconv.FormatUint(ea.OwnerEntityID, 10) {
			return false
		}
		return isActive(ea.ActiveStatus, filter)
	})
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeEntityAccessorialRepo) FindEntityAccessorial(_ context.Context, id uint64) (*entities.EntityAccessorial, error) {
	ea, ok := r.store.entityCharges[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	ea.AccessorialName = r.store.accessorials[ea.AccessorialID].AccessorialName
	return &ea, nil
}

func (r *fakeEntityAccessorialRepo) FindActivePairing(_ context.Context, ownerEntityID, accessorialID uint64) (*entities.EntityAccessorial, error) {
	for _, ea := range r.store.entityCharges {
		if ea.OwnerEntityID == ownerEntityID && ea.AccessorialID == accessorialID && ea.ActiveStatus == types.ActiveStatusYes {
			return &ea, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEntityAccessorialRepo) CreateEntityAccessorialInTx(_ context.Context, _ pgx.Tx, ea entities.EntityAccessorial) (uint64, error) {
	ea.EntityAccessorialID = r.store.nextID()
	ea.ActiveStatus = types.ActiveStatusYes
	ea.CreatedAt = r.store.now()
	r.store.entityCharges[ea.EntityAccessorialID] = ea
	return ea.EntityAccessorialID, nil
}

func (r *fakeEntityAccessorialRepo) UpdateCharge(_ context.Context, ea entities.EntityAccessorial) error {
	if _, ok := r.store.entityCharges[ea.EntityAccessorialID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.entityCharges[ea.EntityAccessorialID] = ea
	return nil
}

func (r *fakeEntityAccessorialRepo) DeleteEntityAccessorial(_ context.Context, id uint64, _ *uint64) error {
	ea, ok := r.store.entityCharges[id]
	if !ok || ea.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	ea.ActiveStatus = types.ActiveStatusNo
	r.store.entityCharges[id] = ea
	return nil
}

type fakeZoneRepo struct {
	store *memStore
	zips  []entities.ZoneZip
}

func (r *fakeZoneRepo) GetZones(_ context.Context, filter types.Filter) ([]entities.Zone, uint64, error) {
	out := sortedValues(r.store.zones, func(z entities.Zone) bool { return isActive(z.ActiveStatus, filter) })
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeZoneRepo) FindZone(_ context.Context, id uint64) (*entities.Zone, error) {
	z, ok := r.store.zones[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &z, nil
}

func (r *fakeZoneRepo) FindByName(_ context.Context, name string) (*entities.Zone, error) {
	for _, z := range r.store.zones {
		if z.ZoneName == name {
			return &z, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeZoneRepo) CreateZone(_ context.Context, z entities.Zone) (uint64, error) {
	z.ZoneID = r.store.nextID()
	z.ActiveStatus = types.ActiveStatusYes
	r.store.zones[z.ZoneID] = z
	return z.ZoneID, nil
}

func (r *fakeZoneRepo) UpdateZone(_ context.Context, z entities.Zone) error {
	if _, ok := r.store.zones[z.ZoneID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.zones[z.ZoneID] = z
	return nil
}

func (r *fakeZoneRepo) DeleteZone(_ context.Context, id uint64, _ *uint64) error {
	z, ok := r.store.zones[id]
	if !ok || z.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	z.ActiveStatus = types.ActiveStatusNo
	r.store.zones[id] = z
	return nil
}

func (r *fakeZoneRepo) AddZip(_ context.Context, zz entities.ZoneZip) (*entities.ZoneZip, error) {
	zz.ZoneZipID = r.store.nextID()
	r.zips = append(r.zips, zz)
	return &zz, nil
}

func (r *fakeZoneRepo) ListZips(_ context.Context, zoneID uint64) ([]entities.ZoneZip, error) {
	var out []entities.ZoneZip
	for _, zz := range r.zips {
		if zz.ZoneID == zoneID {
			out = append(out, zz)
		}
	}
	return out, nil
}

func (r *fakeZoneRepo) DeleteZip(_ context.Context, zoneID, zoneZipID uint64) error {
	for i, zz := range r.zips {
		if zz.ZoneID == zoneID && zz.ZoneZipID == zoneZipID {
			r.zips = append(r.zips[:i], r.zips[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeZoneRepo) ResolveZones(_ context.Context, _ types.ZipQuery) ([]entities.Zone, error) {
	return []entities.Zone{}, nil
}

type fakeRateRepo struct {
	store      *memStore
	lastSearch repositories.TransportRateSearch
}

func (r *fakeRateRepo) GetTransportRates(_ context.Context, filter types.Filter, search repositories.TransportRateSearch) ([]entities.CustomerRate, uint64, error) {
	r.lastSearch = search
	out := sortedValues(r.store.transportRates, func(cr entities.CustomerRate) bool {
		return isActive(cr.ActiveStatus, filter)
	})
	for i := range out {
		out[i].Details = r.store.rateDetails[out[i].RateID]
	}
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeRateRepo) FindTransportRate(_ context.Context, id uint64) (*entities.CustomerRate, error) {
	cr, ok := r.store.transportRates[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cr.OriginZoneName = r.store.zones[cr.OriginZoneID].ZoneName
	cr.DestinationZoneName = r.store.zones[cr.DestinationZoneID].ZoneName
	cr.Details = append([]entities.CustomerRateDetail{}, r.store.rateDetails[id]...)
	return &cr, nil
}

func (r *fakeRateRepo) CreateTransportRateInTx(_ context.Context, _ pgx.Tx, cr entities.CustomerRate) (uint64, error) {
	cr.RateID = r.store.nextID()
	cr.ActiveStatus = types.ActiveStatusYes
	cr.CreatedAt = r.store.now()
	r.store.transportRates[cr.RateID] = cr
	return cr.RateID, nil
}

func (r *fakeRateRepo) UpdateTransportRateInTx(_ context.Context, _ pgx.Tx, cr entities.CustomerRate) error {
	if _, ok := r.store.transportRates[cr.RateID]; !ok {
		return apperrors.ErrNotFound
	}
	cr.Details = nil
	r.store.transportRates[cr.RateID] = cr
	return nil
}

func (r *fakeRateRepo) ReplaceDetailsInTx(_ context.Context, _ pgx.Tx, rateID uint64, details []entities.CustomerRateDetail) error {
	if r.store.failReplaceRate {
		return errInjected
	}
	out := make([]entities.CustomerRateDetail, 0, len(details))
	for _, d := range details {
		d.RateDetailID = r.store.nextID()
		d.RateID = rateID
		out = append(out, d)
	}
	r.store.rateDetails[rateID] = out
	return nil
}

func (r *fakeRateRepo) DeleteTransportRate(_ context.Context, id uint64, _ *uint64) error {
	cr, ok := r.store.transportRates[id]
	if !ok || cr.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	cr.ActiveStatus = types.ActiveStatusNo
	r.store.transportRates[id] = cr
	return nil
}

func (r *fakeRateRepo) GetWarehouseRates(_ context.Context, filter types.Filter) ([]entities.CustomerRateWarehouse, uint64, error) {
	out := sortedValues(r.store.warehouseRates, func(w entities.CustomerRateWarehouse) bool {
		return isActive(w.ActiveStatus, filter)
	})
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeRateRepo) FindWarehouseRate(_ context.Context, id uint64) (*entities.CustomerRateWarehouse, error) {
	w, ok := r.store.warehouseRates[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (r *fakeRateRepo) CreateWarehouseRate(_ context.Context, w entities.CustomerRateWarehouse) (uint64, error) {
	w.RateID = r.store.nextID()
	w.ActiveStatus = types.ActiveStatusYes
	w.CreatedAt = r.store.now()
	r.store.warehouseRates[w.RateID] = w
	return w.RateID, nil
}

func (r *fakeRateRepo) UpdateWarehouseRate(_ context.Context, w entities.CustomerRateWarehouse) error {
	if _, ok := r.store.warehouseRates[w.RateID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.warehouseRates[w.RateID] = w
	return nil
}

func (r *fakeRateRepo) DeleteWarehouseRate(_ context.Context, id uint64, _ *uint64) error {
	w, ok := r.store.warehouseRates[id]
	if !ok || w.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	w.ActiveStatus = types.ActiveStatusNo
	r.store.warehouseRates[id] = w
	return nil
}

type fakeStationRateRepo struct{ store *memStore }

// RateExists looks only in the table the discriminator names.
func (r *fakeStationRateRepo) RateExists(_ context.Context, rateType entities.RateType, rateID uint64) (bool, error) {
	switch rateType {
	case entities.RateTypeTransport:
		cr, ok := r.store.transportRates[rateID]
		return ok && cr.ActiveStatus == types.ActiveStatusYes, nil
	case entities.RateTypeWarehouse:
		w, ok := r.store.warehouseRates[rateID]
		return ok && w.ActiveStatus == types.ActiveStatusYes, nil
	}
	return false, nil
}

func (r *fakeStationRateRepo) CreateStationRate(_ context.Context, sr entities.StationRate) (*entities.StationRate, error) {
	sr.StationRateID = r.store.nextID()
	sr.ActiveStatus = types.ActiveStatusYes
	sr.CreatedAt = r.store.now()
	r.store.stationRates[sr.StationRateID] = sr
	return &sr, nil
}

func (r *fakeStationRateRepo) ListStationRates(_ context.Context, stationID uint64) ([]entities.StationRate, error) {
	return sortedValues(r.store.stationRates, func(sr entities.StationRate) bool {
		return sr.StationID == stationID && sr.ActiveStatus == types.ActiveStatusYes
	}), nil
}

func (r *fakeStationRateRepo) DeleteStationRate(_ context.Context, stationID, stationRateID uint64, actor *uint64) error {
	sr, ok := r.store.stationRates[stationRateID]
	if !ok || sr.StationID != stationID || sr.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	sr.ActiveStatus = types.ActiveStatusNo
	sr.UpdatedBy = actor
	r.store.stationRates[stationRateID] = sr
	return nil
}
