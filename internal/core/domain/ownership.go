package domain

// Owns reports whether the caller may view or mutate a resource. Ownership
// is the only access rule: no roles, no sharing, no admin override.
func Owns(callerID, resourceOwnerID uint64) bool {
	return callerID == resourceOwnerID
}
