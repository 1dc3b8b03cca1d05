package dashboard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chrisdamba/dishstats/internal/models"
)

// RecordsPerPage is the fixed table page size.
const RecordsPerPage = 10

// QueryTable runs the table pipeline: backfill dates, keep orders in
// the query's timeframe, apply search and the exact-match type/status
// filters, sort, and slice out the requested page. Each stage is
// skipped when its parameter is empty. A page beyond the last yields
// an empty slice, not an error.
func (d *Dashboard) QueryTable(q models.TableQuery) models.TablePage {
	orders := d.BackfillDates(d.Orders)

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if !d.InTimeframe(order, q.Timeframe) {
			continue
		}
		if !matchesSearch(order, q.Search) {
			continue
		}
		if q.OrderType != "" && order.OrderType != q.OrderType {
			continue
		}
		if q.OrderStatus != "" && order.OrderStatus != q.OrderStatus {
			continue
		}
		filtered = append(filtered, order)
	}

	// Totals are precomputed once; the sort and the rendered table
	// both need them.
	totals := make([]float64, len(filtered))
	for i, order := range filtered {
		totals[i] = order.Total()
	}

	indices := make([]int, len(filtered))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		a, b := indices[i], indices[j]
		var less, greater bool
		if q.SortBy == models.SortByTotal {
			less = totals[a] < totals[b]
			greater = totals[a] > totals[b]
		} else {
			less = filtered[a].CustomerName < filtered[b].CustomerName
			greater = filtered[a].CustomerName > filtered[b].CustomerName
		}
		if q.SortDir == models.SortAsc {
			return less
		}
		return greater
	})

	sorted := make([]models.Order, len(filtered))
	sortedTotals := make([]float64, len(filtered))
	for i, idx := range indices {
		sorted[i] = filtered[idx]
		sortedTotals[i] = totals[idx]
	}

	totalPages := (len(sorted) + RecordsPerPage - 1) / RecordsPerPage

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * RecordsPerPage
	end := start + RecordsPerPage
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return models.TablePage{
		Orders:     sorted[start:end],
		Totals:     sortedTotals[start:end],
		TotalCount: len(sorted),
		TotalPages: totalPages,
		Query:      q,
	}
}

// matchesSearch is a case-insensitive substring match on the customer
// name, or a substring match on the decimal order id. An empty term
// passes everything.
func matchesSearch(order models.Order, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(order.CustomerName), strings.ToLower(term)) {
		return true
	}
	return strings.Contains(strconv.Itoa(order.ID), term)
}
