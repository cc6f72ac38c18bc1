package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_DefaultAllowList(t *testing.T) {
	p := NewPolicy(nil, nil)

	for _, id := range []int{101, 102, 103, 104} {
		assert.True(t, p.IsAuthorizedToViewServiceOrders(id), "employee %d should be allowed", id)
	}
	for _, id := range []int{0, -1, 100, 105, 999} {
		assert.False(t, p.IsAuthorizedToViewServiceOrders(id), "employee %d should be denied", id)
	}
	assert.Equal(t, []int{101, 102, 103, 104}, p.Viewers())
}

func TestPolicy_ConfiguredAllowList(t *testing.T) {
	p := NewPolicy([]int{7, 3}, []int{1})

	assert.True(t, p.IsAuthorizedToViewServiceOrders(7))
	assert.False(t, p.IsAuthorizedToViewServiceOrders(101))
	assert.Equal(t, []int{3, 7}, p.Viewers())
}

func TestPolicy_EmptyAllowListDeniesEveryone(t *testing.T) {
	p := NewPolicy([]int{}, nil)

	assert.False(t, p.IsAuthorizedToViewServiceOrders(101))
	assert.Empty(t, p.Viewers())
}

func TestPolicy_IsAdmin(t *testing.T) {
	p := NewPolicy(nil, []int{1})

	assert.True(t, p.IsAdmin(1))
	assert.False(t, p.IsAdmin(101), "list viewers are not admins")
	assert.False(t, NewPolicy(nil, nil).IsAdmin(1))
}
