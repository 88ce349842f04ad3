package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedResource struct {
	userID string
}

func (r *ownedResource) OwnerID() string {
	return r.userID
}

func TestBelongsTo(t *testing.T) {
	resource := &ownedResource{userID: "user-1"}

	assert.True(t, BelongsTo(resource, "user-1"))
	assert.False(t, BelongsTo(resource, "user-2"))
	assert.False(t, BelongsTo(resource, ""))
}
