package models

const (
	OrderTypeOnline = "Online"
	OrderTypeDineIn = "Dine In"

	OrderStatusDelivered = "Delivered"
	OrderStatusInTransit = "In Transit"
	OrderStatusPending   = "Pending"

	TrendUp   = "up"
	TrendDown = "down"
	TrendNone = "none"

	TimeframeToday = "today"
	TimeframeWeek  = "week"
	TimeframeMonth = "month"

	SortByCustomerName = "customer_name"
	SortByTotal        = "total"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Chart colors are a fixed display contract with the rendering layer.
const (
	ColorOnline    = "#8B5CF6"
	ColorDineIn    = "#10B981"
	ColorDelivered = "#10B981"
	ColorInTransit = "#F59E0B"
	ColorPending   = "#EF4444"
)
