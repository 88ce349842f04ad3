// Package ownership holds the shared owner check applied before any mutation
// of a user-scoped resource.
package ownership

// Owned is implemented by resources that record their owning user.
type Owned interface {
	OwnerID() string
}

// BelongsTo reports whether the resource is owned by the given user.
func BelongsTo(resource Owned, userID string) bool {
	return resource.OwnerID() == userID
}
