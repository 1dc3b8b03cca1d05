package models

// TableQuery is the full state driving the order-table pipeline:
// timeframe, free-text search, type/status filters, sort key and
// direction, and the requested page. It is an immutable value; the
// With* helpers return updated copies and apply the page-reset rule
// (any filter, search or timeframe change sends the table back to
// page 1).
type TableQuery struct {
	Timeframe   string `json:"timeframe"`
	Search      string `json:"search"`
	OrderType   string `json:"order_type"`
	OrderStatus string `json:"order_status"`
	SortBy      string `json:"sort_by"`
	SortDir     string `json:"sort_dir"`
	Page        int    `json:"page"`
}

func DefaultTableQuery() TableQuery {
	return TableQuery{
		Timeframe: TimeframeToday,
		SortBy:    SortByCustomerName,
		SortDir:   SortDesc,
		Page:      1,
	}
}

func (q TableQuery) WithTimeframe(timeframe string) TableQuery {
	q.Timeframe = timeframe
	q.Page = 1
	return q
}

func (q TableQuery) WithSearch(term string) TableQuery {
	q.Search = term
	q.Page = 1
	return q
}

func (q TableQuery) WithOrderType(orderType string) TableQuery {
	q.OrderType = orderType
	q.Page = 1
	return q
}

func (q TableQuery) WithOrderStatus(status string) TableQuery {
	q.OrderStatus = status
	q.Page = 1
	return q
}

func (q TableQuery) WithPage(page int) TableQuery {
	q.Page = page
	return q
}

// WithSort selects a sort column. Re-selecting the current ascending
// column flips it to descending; anything else sorts ascending.
// Sorting does not reset the page.
func (q TableQuery) WithSort(key string) TableQuery {
	if q.SortBy == key && q.SortDir == SortAsc {
		q.SortDir = SortDesc
	} else {
		q.SortDir = SortAsc
	}
	q.SortBy = key
	return q
}

// ClearFilters drops search and both exact-match filters at once and
// returns to the first page.
func (q TableQuery) ClearFilters() TableQuery {
	q.Search = ""
	q.OrderType = ""
	q.OrderStatus = ""
	q.Page = 1
	return q
}

// FilterPanel models the staged type/status filter popover. Opening
// the panel snapshots the committed filters into staging; edits touch
// only the staging copy until Apply commits them. Clear empties the
// staging values without touching the committed query, and Close
// discards staged edits.
type FilterPanel struct {
	open         bool
	stagedType   string
	stagedStatus string
}

func (p *FilterPanel) Open(q TableQuery) {
	p.open = true
	p.stagedType = q.OrderType
	p.stagedStatus = q.OrderStatus
}

func (p *FilterPanel) IsOpen() bool { return p.open }

func (p *FilterPanel) SetType(orderType string) { p.stagedType = orderType }

func (p *FilterPanel) SetStatus(status string) { p.stagedStatus = status }

func (p *FilterPanel) StagedType() string { return p.stagedType }

func (p *FilterPanel) StagedStatus() string { return p.stagedStatus }

// Clear resets only the staged values; the committed filters stay
// active until Apply is pressed.
func (p *FilterPanel) Clear() {
	p.stagedType = ""
	p.stagedStatus = ""
}

// Apply commits the staged filters, closes the panel and resets to
// the first page.
func (p *FilterPanel) Apply(q TableQuery) TableQuery {
	p.open = false
	q.OrderType = p.stagedType
	q.OrderStatus = p.stagedStatus
	q.Page = 1
	return q
}

// Close discards staged edits without committing them.
func (p *FilterPanel) Close() {
	p.open = false
}

// TablePage is one page of the filtered, sorted order table. Totals
// is parallel to Orders and carries the computed per-order total the
// table displays.
type TablePage struct {
	Orders     []Order    `json:"orders"`
	Totals     []float64  `json:"totals"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
	Query      TableQuery `json:"query"`
}
