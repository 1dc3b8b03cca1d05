package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableQueryChangesResetPage(t *testing.T) {
	q := DefaultTableQuery().WithPage(3)

	assert.Equal(t, 1, q.WithSearch("ann").Page)
	assert.Equal(t, 1, q.WithTimeframe(TimeframeWeek).Page)
	assert.Equal(t, 1, q.WithOrderType(OrderTypeOnline).Page)
	assert.Equal(t, 1, q.WithOrderStatus(OrderStatusPending).Page)
	assert.Equal(t, 1, q.ClearFilters().Page)
}

func TestTableQueryWithSortTogglesDirection(t *testing.T) {
	q := DefaultTableQuery().WithPage(2)

	q = q.WithSort(SortByCustomerName)
	assert.Equal(t, SortByCustomerName, q.SortBy)
	assert.Equal(t, SortAsc, q.SortDir, "re-selecting a descending column sorts ascending")

	q = q.WithSort(SortByCustomerName)
	assert.Equal(t, SortDesc, q.SortDir, "re-selecting an ascending column flips it")

	q = q.WithSort(SortByTotal)
	assert.Equal(t, SortByTotal, q.SortBy)
	assert.Equal(t, SortAsc, q.SortDir, "switching columns starts ascending")

	assert.Equal(t, 2, q.Page, "sorting keeps the current page")
}

func TestTableQueryClearFilters(t *testing.T) {
	q := DefaultTableQuery().
		WithSearch("ann").
		WithOrderType(OrderTypeOnline).
		WithOrderStatus(OrderStatusPending).
		WithPage(2)

	q = q.ClearFilters()
	assert.Empty(t, q.Search)
	assert.Empty(t, q.OrderType)
	assert.Empty(t, q.OrderStatus)
	assert.Equal(t, 1, q.Page)
}

func TestFilterPanelApplyCommitsStagedFilters(t *testing.T) {
	q := DefaultTableQuery().WithPage(2)
	var panel FilterPanel

	panel.Open(q)
	assert.True(t, panel.IsOpen())
	assert.Empty(t, panel.StagedType(), "staging snapshots the committed values")

	panel.SetType(OrderTypeOnline)
	panel.SetStatus(OrderStatusDelivered)
	assert.Empty(t, q.OrderType, "edits stay in staging until Apply")

	q = panel.Apply(q)
	assert.False(t, panel.IsOpen())
	assert.Equal(t, OrderTypeOnline, q.OrderType)
	assert.Equal(t, OrderStatusDelivered, q.OrderStatus)
	assert.Equal(t, 1, q.Page, "applying filters returns to the first page")
}

func TestFilterPanelClearTouchesOnlyStaging(t *testing.T) {
	q := DefaultTableQuery().WithOrderType(OrderTypeOnline)
	var panel FilterPanel

	panel.Open(q)
	assert.Equal(t, OrderTypeOnline, panel.StagedType())

	panel.Clear()
	assert.Empty(t, panel.StagedType())
	assert.Equal(t, OrderTypeOnline, q.OrderType, "committed filters survive Clear until Apply")

	q = panel.Apply(q)
	assert.Empty(t, q.OrderType, "Apply after Clear commits the empty staging")
}

func TestFilterPanelCloseDiscardsStagedEdits(t *testing.T) {
	q := DefaultTableQuery()
	var panel FilterPanel

	panel.Open(q)
	panel.SetType(OrderTypeDineIn)
	panel.Close()

	assert.False(t, panel.IsOpen())
	assert.Empty(t, q.OrderType, "closing without Apply changes nothing")

	// Reopening resnapshots from the committed query.
	panel.Open(q)
	assert.Empty(t, panel.StagedType())
}
