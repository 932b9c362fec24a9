package authz

// PermissionSet builds a lookup from permission names.
func PermissionSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Can reports whether perms holds at least one of the required permissions.
// An empty requirement list only needs an authenticated caller.
func Can(perms map[string]bool, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, p := range required {
		if perms[p] {
			return true
		}
	}
	return false
}

// ModuleOf returns the module a catalog permission belongs to.
func ModuleOf(permission string) (string, bool) {
	for module, names := range Modules {
		for _, n := range names {
			if n == permission {
				return module, true
			}
		}
	}
	return "", false
}
