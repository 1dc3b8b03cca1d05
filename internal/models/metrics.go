package models

// ChartSlice is one named bucket of a pie-style distribution.
type ChartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// ItemSales is one row of the top-selling-items ranking.
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// CourierStat is one row of the delivery-performance ranking.
type CourierStat struct {
	Name       string `json:"name"`
	Deliveries int    `json:"deliveries"`
}

// DayRevenue is one bucket of the weekly revenue trend.
type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// ChangeStat is a period-over-period percentage delta. Value is a
// signed one-decimal string ("+50.0", "-12.5"); Trend is one of
// TrendUp, TrendDown, TrendNone.
type ChangeStat struct {
	Value string `json:"value"`
	Trend string `json:"trend"`
}

// DashboardData is the full metrics bundle the rendering layer
// consumes: metric cards, distributions, rankings and the revenue
// trend, plus period-over-period deltas for the three headline
// figures. It is recomputed on every call; nothing is persisted.
type DashboardData struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	DeliveredOrders int     `json:"delivered_orders"`
	PendingOrders   int     `json:"pending_orders"`
	InTransitOrders int     `json:"in_transit_orders"`

	OrderTypeData       []ChartSlice  `json:"order_type_data"`
	TopItems            []ItemSales   `json:"top_items"`
	DeliveryPerformance []CourierStat `json:"delivery_performance"`
	StatusData          []ChartSlice  `json:"status_data"`
	RevenueTrend        []DayRevenue  `json:"revenue_trend"`

	RevenueChange       ChangeStat `json:"revenue_change"`
	OrdersChange        ChangeStat `json:"orders_change"`
	AvgOrderValueChange ChangeStat `json:"avg_order_value_change"`
}
