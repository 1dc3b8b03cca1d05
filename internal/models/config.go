package models

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed        int64     `mapstructure:"seed"`
	Timeframe   string    `mapstructure:"timeframe"`
	Search      string    `mapstructure:"search"`
	OrderType   string    `mapstructure:"order-type"`
	OrderStatus string    `mapstructure:"order-status"`
	SortBy      string    `mapstructure:"sort-by"`
	SortDir     string    `mapstructure:"sort-dir"`
	Page        int       `mapstructure:"page"`
	DataFile    string    `mapstructure:"data"`
	DemoOrders  int       `mapstructure:"demo-orders"`
	Output      string    `mapstructure:"output"`
	OutputDir   string    `mapstructure:"output-dir"`
	ReportTime  time.Time `mapstructure:"report-time"` // zero means "now"
}

// LoadConfig initializes and reads the configuration using Viper.
// A config file is optional; flags and environment variables alone
// are enough to run.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("dishstats")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// LoadOrders reads an order file, dispatching on the extension.
// JSON files hold an array of orders; CSV files hold one row per
// order item, grouped by order id.
func LoadOrders(filePath string) ([]Order, error) {
	if strings.HasSuffix(strings.ToLower(filePath), ".csv") {
		return loadOrdersCSV(filePath)
	}
	return loadOrdersJSON(filePath)
}

func loadOrdersJSON(filePath string) ([]Order, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse order file %s: %w", filePath, err)
	}
	return orders, nil
}

// CSV columns: order_id, customer_name, customer_phone,
// customer_address, order_type, order_status, delivery_person,
// order_date, item_name, item_price, quantity, total_price.
// order_date may be empty; rows sharing an order_id merge into one
// order in first-row order.
func loadOrdersCSV(filePath string) ([]Order, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Read() // header

	var orders []Order
	index := make(map[int]int) // order id -> position in orders
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 12 {
			return nil, fmt.Errorf("malformed order row in %s: want 12 fields, got %d", filePath, len(fields))
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("bad order id %q: %w", fields[0], err)
		}
		unitPrice, _ := strconv.ParseFloat(fields[9], 64)
		quantity, _ := strconv.Atoi(fields[10])
		totalPrice, _ := strconv.ParseFloat(fields[11], 64)
		item := OrderItem{
			Name:       fields[8],
			UnitPrice:  unitPrice,
			Quantity:   quantity,
			TotalPrice: totalPrice,
		}

		if pos, ok := index[id]; ok {
			orders[pos].Items = append(orders[pos].Items, item)
			continue
		}

		order := Order{
			ID:              id,
			CustomerName:    fields[1],
			CustomerPhone:   fields[2],
			CustomerAddress: fields[3],
			OrderType:       fields[4],
			OrderStatus:     fields[5],
			DeliveryPerson:  fields[6],
			Items:           []OrderItem{item},
		}
		if fields[7] != "" {
			when, err := time.Parse(time.RFC3339, fields[7])
			if err != nil {
				return nil, fmt.Errorf("bad order date %q: %w", fields[7], err)
			}
			order.OrderDate = &when
		}
		index[id] = len(orders)
		orders = append(orders, order)
	}

	return orders, nil
}
