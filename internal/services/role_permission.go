package services

import (
	"sort"

	"freight-admin/internal/dto"
	"freight-admin/internal/entities"
)

// flattenPermissionFlags resolves every granted flag to a catalog id by
// permission name. False flags and unknown names are dropped. The result is
// de-duplicated and sorted.
func flattenPermissionFlags(flags dto.PermissionFlags, catalog []entities.Permission) []uint64 {
	byName := make(map[string]uint64, len(catalog))
	for _, p := range catalog {
		byName[p.PermissionName] = p.PermissionID
	}

	seen := make(map[uint64]struct{})
	ids := make([]uint64, 0)
	for _, module := range flags {
		for name, granted := range module {
			if !granted {
				continue
			}
			id, ok := byName[name]
			if !ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// buildPermissionFlags renders the full catalog in wire shape with the
// granted permissions set to true.
func buildPermissionFlags(catalog []entities.Permission, granted []entities.Permission) dto.PermissionFlags {
	has := make(map[uint64]struct{}, len(granted))
	for _, p := range granted {
		has[p.PermissionID] = struct{}{}
	}

	flags := make(dto.PermissionFlags)
	for _, p := range catalog {
		module, ok := flags[p.ModuleName]
		if !ok {
			module = make(map[string]bool)
			flags[p.ModuleName] = module
		}
		_, ok = has[p.PermissionID]
		module[p.PermissionName] = ok
	}
	return flags
}
