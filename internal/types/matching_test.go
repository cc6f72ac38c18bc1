//nolint:revive // types is a standard Go package name pattern
package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func TestSortForOrder_PriorityThenScore(t *testing.T) {
	// priorities [3, nil, 1, nil, 2] with scores [50, 90, 70, 10, 60]
	items := []PriorityMatchingListItem{
		{MatchingListID: 1, Priority: intPtr(3), MatchingIndexScore: intPtr(50)},
		{MatchingListID: 2, Priority: nil, MatchingIndexScore: intPtr(90)},
		{MatchingListID: 3, Priority: intPtr(1), MatchingIndexScore: intPtr(70)},
		{MatchingListID: 4, Priority: nil, MatchingIndexScore: intPtr(10)},
		{MatchingListID: 5, Priority: intPtr(2), MatchingIndexScore: intPtr(60)},
	}

	SortForOrder(items)

	var ids []int
	for _, item := range items {
		ids = append(ids, item.MatchingListID)
	}
	assert.Equal(t, []int{3, 5, 1, 2, 4}, ids)
	assert.Equal(t, 1, *items[0].Priority)
	assert.Equal(t, 2, *items[1].Priority)
	assert.Equal(t, 3, *items[2].Priority)
	assert.Nil(t, items[3].Priority)
	assert.Equal(t, 90, *items[3].MatchingIndexScore)
	assert.Nil(t, items[4].Priority)
	assert.Equal(t, 10, *items[4].MatchingIndexScore)
}

func TestSortForOrder_SamePriorityHigherScoreFirst(t *testing.T) {
	items := []PriorityMatchingListItem{
		{MatchingListID: 1, Priority: intPtr(1), MatchingIndexScore: intPtr(40)},
		{MatchingListID: 2, Priority: intPtr(1), MatchingIndexScore: nil},
		{MatchingListID: 3, Priority: intPtr(1), MatchingIndexScore: intPtr(80)},
	}

	SortForOrder(items)

	assert.Equal(t, 3, items[0].MatchingListID)
	assert.Equal(t, 1, items[1].MatchingListID)
	assert.Equal(t, 2, items[2].MatchingListID, "missing score sorts last")
}

func TestSortForEmployee_NilPriorityIsMaxInt(t *testing.T) {
	items := []AssociateWillingnessItem{
		{MatchingListID: 1, ServiceOrderID: 30, Priority: nil},
		{MatchingListID: 2, ServiceOrderID: 20, Priority: intPtr(2)},
		{MatchingListID: 3, ServiceOrderID: 10, Priority: nil},
		{MatchingListID: 4, ServiceOrderID: 40, Priority: intPtr(1)},
		{MatchingListID: 5, ServiceOrderID: 15, Priority: intPtr(2)},
	}

	SortForEmployee(items)

	var ids []int
	for _, item := range items {
		ids = append(ids, item.MatchingListID)
	}
	assert.Equal(t, []int{4, 5, 2, 3, 1}, ids)
}

func TestSortForEmployee_ExplicitMaxPriorityTiesWithNil(t *testing.T) {
	items := []AssociateWillingnessItem{
		{MatchingListID: 1, ServiceOrderID: 9, Priority: nil},
		{MatchingListID: 2, ServiceOrderID: 3, Priority: intPtr(math.MaxInt32)},
	}

	SortForEmployee(items)

	assert.Equal(t, 2, items[0].MatchingListID, "ties fall back to service order id")
}

func TestWillingnessOf(t *testing.T) {
	assert.Equal(t, WillingnessUnset, WillingnessOf(nil))
	assert.Equal(t, WillingnessWilling, WillingnessOf(boolPtr(true)))
	assert.Equal(t, WillingnessNotWilling, WillingnessOf(boolPtr(false)))

	item := PriorityMatchingListItem{AssociateWilling: boolPtr(true)}
	assert.Equal(t, WillingnessWilling, item.Willingness())
}
