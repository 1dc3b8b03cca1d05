package dashboard

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/chrisdamba/dishstats/internal/models"
	"github.com/lucsky/cuid"
)

// OutputDestination receives report rows grouped by topic.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	// Try to sync, but don't return an error if it fails
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// JSONOutput writes newline-delimited JSON, one file per topic.
type JSONOutput struct {
	basePath string
	files    map[string]*os.File
}

func NewJSONOutput(basePath string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	if _, ok := j.files[topic]; !ok {
		filename := filepath.Join(j.basePath, fmt.Sprintf("%s.json", topic))
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		j.files[topic] = file
	}

	if _, err := j.files[topic].Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (j *JSONOutput) Close() error {
	for topic, file := range j.files {
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close file for topic %s: %w", topic, err)
		}
	}
	return nil
}

// CSVOutput writes one CSV file per topic. The column order comes
// from the known report topics; unknown topics fall back to the
// sorted keys of their first row.
type CSVOutput struct {
	basePath string
	files    map[string]*os.File
	writers  map[string]*csv.Writer
	headers  map[string][]string
}

func NewCSVOutput(basePath string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		files:    make(map[string]*os.File),
		writers:  make(map[string]*csv.Writer),
		headers: map[string][]string{
			TopicSummary:      {"report_id", "timeframe", "total_revenue", "total_orders", "avg_order_value", "delivered_orders", "pending_orders", "in_transit_orders", "revenue_change", "revenue_trend_dir", "orders_change", "orders_trend_dir", "avg_order_value_change", "avg_order_value_trend_dir"},
			TopicRevenueTrend: {"day", "revenue"},
			TopicOrderTypes:   {"name", "value", "color"},
			TopicStatus:       {"name", "value", "color"},
			TopicTopItems:     {"name", "quantity", "revenue"},
			TopicCouriers:     {"name", "deliveries"},
			TopicOrders:       {"order_id", "customer_name", "customer_phone", "customer_address", "order_type", "order_status", "delivery_person", "order_date", "total"},
		},
	}
}

func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var row map[string]interface{}
	if err := json.Unmarshal(msg, &row); err != nil {
		return fmt.Errorf("failed to decode message for topic %s: %w", topic, err)
	}

	if _, ok := c.writers[topic]; !ok {
		filename := filepath.Join(c.basePath, fmt.Sprintf("%s.csv", topic))
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		c.files[topic] = file
		c.writers[topic] = csv.NewWriter(file)

		if _, ok := c.headers[topic]; !ok {
			keys := make([]string, 0, len(row))
			for k := range row {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			c.headers[topic] = keys
		}
		if err := c.writers[topic].Write(c.headers[topic]); err != nil {
			return fmt.Errorf("failed to write header for topic %s: %w", topic, err)
		}
	}

	record := make([]string, len(c.headers[topic]))
	for i, key := range c.headers[topic] {
		record[i] = formatCSVValue(row[key])
	}
	if err := c.writers[topic].Write(record); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (c *CSVOutput) Close() error {
	for topic, w := range c.writers {
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("failed to flush writer for topic %s: %w", topic, err)
		}
		if err := c.files[topic].Close(); err != nil {
			return fmt.Errorf("failed to close file for topic %s: %w", topic, err)
		}
	}
	return nil
}

func formatCSVValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%.2f", val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Report topics.
const (
	TopicSummary      = "summary"
	TopicRevenueTrend = "revenue_trend"
	TopicOrderTypes   = "order_types"
	TopicStatus       = "status"
	TopicTopItems     = "top_items"
	TopicCouriers     = "courier_performance"
	TopicOrders       = "orders"
)

// WriteReport emits the metrics bundle and the current table page as
// per-topic rows. Every run gets a fresh report id, returned to the
// caller for logging.
func (d *Dashboard) WriteReport(dest OutputDestination, data models.DashboardData, page models.TablePage) (string, error) {
	reportID := cuid.New()

	summary := map[string]interface{}{
		"report_id":                 reportID,
		"timeframe":                 page.Query.Timeframe,
		"total_revenue":             data.TotalRevenue,
		"total_orders":              data.TotalOrders,
		"avg_order_value":           data.AvgOrderValue,
		"delivered_orders":          data.DeliveredOrders,
		"pending_orders":            data.PendingOrders,
		"in_transit_orders":         data.InTransitOrders,
		"revenue_change":            data.RevenueChange.Value,
		"revenue_trend_dir":         data.RevenueChange.Trend,
		"orders_change":             data.OrdersChange.Value,
		"orders_trend_dir":          data.OrdersChange.Trend,
		"avg_order_value_change":    data.AvgOrderValueChange.Value,
		"avg_order_value_trend_dir": data.AvgOrderValueChange.Trend,
	}
	if err := writeRow(dest, TopicSummary, summary); err != nil {
		return reportID, err
	}

	for _, bucket := range data.RevenueTrend {
		if err := writeRow(dest, TopicRevenueTrend, bucket); err != nil {
			return reportID, err
		}
	}
	for _, slice := range data.OrderTypeData {
		if err := writeRow(dest, TopicOrderTypes, slice); err != nil {
			return reportID, err
		}
	}
	for _, slice := range data.StatusData {
		if err := writeRow(dest, TopicStatus, slice); err != nil {
			return reportID, err
		}
	}
	for _, item := range data.TopItems {
		if err := writeRow(dest, TopicTopItems, item); err != nil {
			return reportID, err
		}
	}
	for _, courier := range data.DeliveryPerformance {
		if err := writeRow(dest, TopicCouriers, courier); err != nil {
			return reportID, err
		}
	}

	for i, order := range page.Orders {
		orderDate := ""
		if order.OrderDate != nil {
			orderDate = order.OrderDate.Format(time.RFC3339)
		}
		row := map[string]interface{}{
			"order_id":         order.ID,
			"customer_name":    order.CustomerName,
			"customer_phone":   order.CustomerPhone,
			"customer_address": order.CustomerAddress,
			"order_type":       order.OrderType,
			"order_status":     order.OrderStatus,
			"delivery_person":  order.DeliveryPerson,
			"order_date":       orderDate,
			"total":            page.Totals[i],
		}
		if err := writeRow(dest, TopicOrders, row); err != nil {
			return reportID, err
		}
	}

	return reportID, nil
}

func writeRow(dest OutputDestination, topic string, row interface{}) error {
	msg, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode row for topic %s: %w", topic, err)
	}
	return dest.WriteMessage(topic, msg)
}
