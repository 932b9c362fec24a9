package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"

	"freight-admin/internal/entities"
	apperrors "freight-admin/pkg/errors"
	"freight-admin/pkg/types"
)

var errInjected = errors.New("injected failure")

// memStore backs every fake repository. fakeTxManager snapshots it before a
// transaction and restores the snapshot when the transaction fails.
type memStore struct {
	seq        uint64
	clock      time.Time
	entities   map[uint64]entities.Entity
	threads    map[uint64]entities.NoteThread
	notes      []entities.NoteMessage
	addresses  map[uint64]entities.EntityAddress
	addrOwner  map[uint64]uint64
	customers  map[uint64]entities.Customer
	stations   map[uint64]entities.Station
	roles      map[uint64]entities.Role
	rolePerms  map[uint64][]uint64
	users      map[uint64]entities.User
	catalog    []entities.Permission
	failAttach bool

	departments     map[uint64]entities.Department
	personnel       map[uint64]entities.CustomerPersonnel
	accessorials    map[uint64]entities.Accessorial
	entityCharges   map[uint64]entities.EntityAccessorial
	zones           map[uint64]entities.Zone
	transportRates  map[uint64]entities.CustomerRate
	rateDetails     map[uint64][]entities.CustomerRateDetail
	warehouseRates  map[uint64]entities.CustomerRateWarehouse
	stationRates    map[uint64]entities.StationRate
	failReplaceRate bool
}

func newMemStore() *memStore {
	return &memStore{
		clock:     time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		entities:  map[uint64]entities.Entity{},
		threads:   map[uint64]entities.NoteThread{},
		addresses: map[uint64]entities.EntityAddress{},
		addrOwner: map[uint64]uint64{},
		customers: map[uint64]entities.Customer{},
		stations:  map[uint64]entities.Station{},
		roles:     map[uint64]entities.Role{},
		rolePerms: map[uint64][]uint64{},
		users:     map[uint64]entities.User{},

		departments:    map[uint64]entities.Department{},
		personnel:      map[uint64]entities.CustomerPersonnel{},
		accessorials:   map[uint64]entities.Accessorial{},
		entityCharges:  map[uint64]entities.EntityAccessorial{},
		zones:          map[uint64]entities.Zone{},
		transportRates: map[uint64]entities.CustomerRate{},
		rateDetails:    map[uint64][]entities.CustomerRateDetail{},
		warehouseRates: map[uint64]entities.CustomerRateWarehouse{},
		stationRates:   map[uint64]entities.StationRate{},
	}
}

func (s *memStore) nextID() uint64 {
	s.seq++
	return s.seq
}

func (s *memStore) now() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() memStore {
	c := *s
	c.entities = copyMap(s.entities)
	c.threads = copyMap(s.threads)
	c.notes = append([]entities.NoteMessage(nil), s.notes...)
	c.addresses = copyMap(s.addresses)
	c.addrOwner = copyMap(s.addrOwner)
	c.customers = copyMap(s.customers)
	c.stations = copyMap(s.stations)
	c.roles = copyMap(s.roles)
	c.rolePerms = copyMap(s.rolePerms)
	c.users = copyMap(s.users)
	c.departments = copyMap(s.departments)
	c.personnel = copyMap(s.personnel)
	c.accessorials = copyMap(s.accessorials)
	c.entityCharges = copyMap(s.entityCharges)
	c.zones = copyMap(s.zones)
	c.transportRates = copyMap(s.transportRates)
	c.rateDetails = copyMap(s.rateDetails)
	c.warehouseRates = copyMap(s.warehouseRates)
	c.stationRates = copyMap(s.stationRates)
	return c
}

func isActive(status string, filter types.Filter) bool {
	want := filter.ActiveStatus
	if want == "" {
		want = types.ActiveStatusYes
	}
	return want == types.ActiveStatusAll || status == want
}

func page[T any](items []T, filter types.Filter) ([]T, uint64) {
	total := uint64(len(items))
	off := filter.Offset()
	if off >= len(items) {
		return []T{}, total
	}
	end := off + filter.PageSize
	if filter.PageSize == 0 || end > len(items) {
		end = len(items)
	}
	return items[off:end], total
}

type fakeTxManager struct {
	store *memStore
	runs  int
}

func (m *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	m.runs++
	snap := m.store.snapshot()
	if err := fn(nil); err != nil {
		*m.store = snap
		return err
	}
	return nil
}

type fakeEntityRepo struct{ store *memStore }

func (r *fakeEntityRepo) CreateEntityInTx(_ context.Context, _ pgx.Tx, t entities.EntityType, name string) (uint64, error) {
	id := r.store.nextID()
	r.store.entities[id] = entities.Entity{EntityID: id, EntityType: t, EntityName: name, CreatedAt: r.store.now()}
	return id, nil
}

func (r *fakeEntityRepo) FindEntity(_ context.Context, id uint64) (*entities.Entity, error) {
	e, ok := r.store.entities[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

type fakeNoteRepo struct{ store *memStore }

func (r *fakeNoteRepo) CreateThreadInTx(_ context.Context, _ pgx.Tx, entityID uint64) (uint64, error) {
	id := r.store.nextID()
	r.store.threads[id] = entities.NoteThread{NoteThreadID: id, EntityID: entityID, CreatedAt: r.store.now()}
	return id, nil
}

func (r *fakeNoteRepo) AddMessage(_ context.Context, _ pgx.Tx, threadID uint64, text string, actor *uint64) (*entities.NoteMessage, error) {
	msg := entities.NoteMessage{
		NoteMessageID: r.store.nextID(),
		NoteThreadID:  threadID,
		MessageText:   text,
		CreatedBy:     actor,
		CreatedAt:     r.store.now(),
	}
	r.store.notes = append(r.store.notes, msg)
	return &msg, nil
}

func (r *fakeNoteRepo) FindThread(_ context.Context, threadID uint64) (*entities.NoteThread, error) {
	t, ok := r.store.threads[threadID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (r *fakeNoteRepo) ListMessages(_ context.Context, threadID uint64) ([]entities.NoteMessage, error) {
	var out []entities.NoteMessage
	for _, m := range r.store.notes {
		if m.NoteThreadID == threadID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].NoteMessageID > out[j].NoteMessageID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type fakeAddressRepo struct{ store *memStore }

func (r *fakeAddressRepo) AttachAddressesInTx(_ context.Context, _ pgx.Tx, entityID uint64, addresses []entities.EntityAddress, _ *uint64) ([]uint64, error) {
	if len(addresses) == 0 {
		return nil, nil
	}
	if r.store.failAttach {
		return nil, errInjected
	}
	ids := make([]uint64, 0, len(addresses))
	for _, a := range addresses {
		a.EntityAddressID = r.store.nextID()
		a.EntityID = entityID
		a.AddressID = r.store.nextID()
		r.store.addresses[a.EntityAddressID] = a
		r.store.addrOwner[a.EntityAddressID] = entityID
		ids = append(ids, a.EntityAddressID)
	}
	return ids, nil
}

func (r *fakeAddressRepo) UpdateAddressInTx(_ context.Context, _ pgx.Tx, entityID uint64, a entities.EntityAddress, _ *uint64) error {
	current, ok := r.store.addresses[a.EntityAddressID]
	if !ok || r.store.addrOwner[a.EntityAddressID] != entityID {
		return apperrors.ErrNotFound
	}
	a.EntityID = entityID
	a.AddressID = current.AddressID
	if a.AddressRole == "" {
		a.AddressRole = current.AddressRole
	}
	r.store.addresses[a.EntityAddressID] = a
	return nil
}

func (r *fakeAddressRepo) UpdateRole(_ context.Context, id uint64, role entities.AddressRole) error {
	a, ok := r.store.addresses[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.AddressRole = role
	r.store.addresses[id] = a
	return nil
}

func (r *fakeAddressRepo) FindEntityAddress(_ context.Context, id uint64) (*entities.EntityAddress, error) {
	a, ok := r.store.addresses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAddressRepo) ListByEntity(_ context.Context, entityID uint64) ([]entities.EntityAddress, error) {
	var out []entities.EntityAddress
	for id, a := range r.store.addresses {
		if r.store.addrOwner[id] == entityID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityAddressID < out[j].EntityAddressID })
	return out, nil
}

type fakeCustomerRepo struct{ store *memStore }

func (r *fakeCustomerRepo) GetCustomers(_ context.Context, filter types.Filter) ([]entities.Customer, uint64, error) {
	var out []entities.Customer
	for _, c := range r.store.customers {
		if !isActive(c.ActiveStatus, filter) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.CustomerName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeCustomerRepo) FindCustomer(_ context.Context, id uint64) (*entities.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCustomerRepo) FindByAccountNumber(_ context.Context, account string) (*entities.Customer, error) {
	for _, c := range r.store.customers {
		if c.RmAccountNumber == account {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeCustomerRepo) CreateCustomerInTx(ctx context.Context, _ pgx.Tx, c entities.Customer) (uint64, error) {
	if _, err := r.FindByAccountNumber(ctx, c.RmAccountNumber); err == nil {
		return 0, apperrors.NewDuplicateError("rmAccountNumber", c.RmAccountNumber)
	}
	c.CustomerID = r.store.nextID()
	c.ActiveStatus = types.ActiveStatusYes
	c.CreatedAt = r.store.now()
	c.UpdatedAt = c.CreatedAt
	r.store.customers[c.CustomerID] = c
	return c.CustomerID, nil
}

func (r *fakeCustomerRepo) UpdateCustomerInTx(_ context.Context, _ pgx.Tx, c entities.Customer) error {
	if _, ok := r.store.customers[c.CustomerID]; !ok {
		return apperrors.ErrNotFound
	}
	c.UpdatedAt = r.store.now()
	r.store.customers[c.CustomerID] = c
	return nil
}

func (r *fakeCustomerRepo) DeleteCustomer(_ context.Context, id uint64, actor *uint64) error {
	c, ok := r.store.customers[id]
	if !ok || c.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	c.ActiveStatus = types.ActiveStatusNo
	c.UpdatedBy = actor
	r.store.customers[id] = c
	return nil
}

type fakeStationRepo struct{ store *memStore }

func (r *fakeStationRepo) GetStations(_ context.Context, filter types.Filter) ([]entities.Station, uint64, error) {
	var out []entities.Station
	for _, s := range r.store.stations {
		if isActive(s.ActiveStatus, filter) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StationID < out[j].StationID })
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeStationRepo) FindStation(_ context.Context, id uint64) (*entities.Station, error) {
	s, ok := r.store.stations[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &s, nil
}

func (r *fakeStationRepo) CreateStationInTx(_ context.Context, _ pgx.Tx, s entities.Station) (uint64, error) {
	s.StationID = r.store.nextID()
	s.ActiveStatus = types.ActiveStatusYes
	s.CreatedAt = r.store.now()
	r.store.stations[s.StationID] = s
	return s.StationID, nil
}

func (r *fakeStationRepo) UpdateStationInTx(_ context.Context, _ pgx.Tx, s entities.Station) error {
	if _, ok := r.store.stations[s.StationID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.stations[s.StationID] = s
	return nil
}

func (r *fakeStationRepo) DeleteStation(_ context.Context, id uint64, _ *uint64) error {
	s, ok := r.store.stations[id]
	if !ok || s.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	s.ActiveStatus = types.ActiveStatusNo
	r.store.stations[id] = s
	return nil
}

type fakeRoleRepo struct {
	store      *memStore
	failLink   bool
	linkCalls  int
	lastLinked []uint64
}

func (r *fakeRoleRepo) GetRoles(_ context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	var out []entities.Role
	for _, role := range r.store.roles {
		if isActive(role.ActiveStatus, filter) {
			out = append(out, role)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoleID < out[j].RoleID })
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeRoleRepo) FindRole(_ context.Context, id uint64) (*entities.Role, error) {
	role, ok := r.store.roles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &role, nil
}

func (r *fakeRoleRepo) FindByName(_ context.Context, name string) (*entities.Role, error) {
	for _, role := range r.store.roles {
		if role.RoleName == name {
			return &role, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeRoleRepo) CreateRoleInTx(_ context.Context, _ pgx.Tx, role entities.Role) (uint64, error) {
	role.RoleID = r.store.nextID()
	role.ActiveStatus = types.ActiveStatusYes
	r.store.roles[role.RoleID] = role
	return role.RoleID, nil
}

func (r *fakeRoleRepo) UpdateRoleInTx(_ context.Context, _ pgx.Tx, role entities.Role) error {
	r.store.roles[role.RoleID] = role
	return nil
}

func (r *fakeRoleRepo) LinkPermissionsToRoleInTx(_ context.Context, _ pgx.Tx, roleID uint64, ids []uint64) error {
	r.linkCalls++
	r.lastLinked = append([]uint64(nil), ids...)
	if r.failLink {
		return errInjected
	}
	seen := map[uint64]bool{}
	for _, id := range r.store.rolePerms[roleID] {
		seen[id] = true
	}
	for _, id := range ids {
		if seen[id] {
			return apperrors.NewDuplicateError("permissionId", "repeat")
		}
		seen[id] = true
	}
	r.store.rolePerms[roleID] = append(append([]uint64(nil), r.store.rolePerms[roleID]...), ids...)
	return nil
}

func (r *fakeRoleRepo) UnlinkAllPermissionsFromRoleInTx(_ context.Context, _ pgx.Tx, roleID uint64) error {
	delete(r.store.rolePerms, roleID)
	return nil
}

func (r *fakeRoleRepo) GetRolePermissions(_ context.Context, roleID uint64) ([]entities.Permission, error) {
	var out []entities.Permission
	granted := map[uint64]bool{}
	for _, id := range r.store.rolePerms[roleID] {
		granted[id] = true
	}
	for _, p := range r.store.catalog {
		if granted[p.PermissionID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRoleRepo) DeleteRole(_ context.Context, id uint64, _ *uint64) error {
	role, ok := r.store.roles[id]
	if !ok || role.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	role.ActiveStatus = types.ActiveStatusNo
	r.store.roles[id] = role
	return nil
}

type fakePermissionRepo struct {
	store *memStore
	reads int
}

func (r *fakePermissionRepo) GetAllPermissions(_ context.Context) ([]entities.Permission, error) {
	return append([]entities.Permission(nil), r.store.catalog...), nil
}

func (r *fakePermissionRepo) GetPermissionNamesForRole(_ context.Context, roleID uint64) ([]string, error) {
	r.reads++
	role, ok := r.store.roles[roleID]
	if !ok || role.ActiveStatus != types.ActiveStatusYes {
		return []string{}, nil
	}
	names := []string{}
	granted := map[uint64]bool{}
	for _, id := range r.store.rolePerms[roleID] {
		granted[id] = true
	}
	for _, p := range r.store.catalog {
		if granted[p.PermissionID] {
			names = append(names, p.PermissionName)
		}
	}
	return names, nil
}

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) GetUsers(_ context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	var out []entities.User
	for _, u := range r.store.users {
		if isActive(u.ActiveStatus, filter) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	items, total := page(out, filter)
	return items, total, nil
}

func (r *fakeUserRepo) FindUser(_ context.Context, id uint64) (*entities.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByUserName(_ context.Context, name string) (*entities.User, error) {
	for _, u := range r.store.users {
		if strings.EqualFold(u.UserName, name) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) CreateUser(_ context.Context, u entities.User) (uint64, error) {
	u.UserID = r.store.nextID()
	u.ActiveStatus = types.ActiveStatusYes
	if role, ok := r.store.roles[u.RoleID]; ok {
		u.RoleName = role.RoleName
	}
	r.store.users[u.UserID] = u
	return u.UserID, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, u entities.User) error {
	current, ok := r.store.users[u.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = current.PasswordHash
	r.store.users[u.UserID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uint64, hash string, _ *uint64) error {
	u, ok := r.store.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = hash
	r.store.users[id] = u
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id uint64, _ *uint64) error {
	u, ok := r.store.users[id]
	if !ok || u.ActiveStatus != types.ActiveStatusYes {
		return apperrors.ErrNotFound
	}
	u.ActiveStatus = types.ActiveStatusNo
	r.store.users[id] = u
	return nil
}

func seedCatalog(store *memStore) {
	modules := []struct {
		module string
		names  []string
	}{
		{"MAINTENANCE", []string{"canViewUser", "canCreateUser", "canUpdateUser", "canDeleteUser"}},
		{"CUSTOMER", []string{"canViewCustomer", "canCreateCustomer"}},
	}
	for _, m := range modules {
		for _, name := range m.names {
			store.catalog = append(store.catalog, entities.Permission{
				PermissionID:   uint64(len(store.catalog) + 1),
				ModuleName:     m.module,
				PermissionName: name,
				UIFieldName:    null.StringFrom(name),
			})
		}
	}
	// ids above the catalog keep role/user ids from colliding with permission ids
	store.seq = 100
}
