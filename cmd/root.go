package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chrisdamba/dishstats/internal/dashboard"
	"github.com/chrisdamba/dishstats/internal/factories"
	"github.com/chrisdamba/dishstats/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dishstats",
	Short: "Renders restaurant order data as a dashboard report",
	Long:  `dishstats turns a list of restaurant orders into a render-ready dashboard report: headline metrics with period-over-period deltas, chart series for revenue trend and order distributions, and a filtered, sorted, paginated order table, written to console, JSON files or CSV files.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		orders, err := loadOrders(cfg)
		if err != nil {
			log.Fatalf("failed to load orders: %v", err)
		}

		dash := dashboard.New(cfg, orders)
		query := queryFromConfig(cfg)

		data := dash.Report(query.Timeframe)
		page := dash.QueryTable(query)

		dest, err := newDestination(cfg)
		if err != nil {
			log.Fatalf("failed to open output: %v", err)
		}

		reportID, err := dash.WriteReport(dest, data, page)
		if err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		if err := dest.Close(); err != nil {
			log.Fatalf("failed to close output: %v", err)
		}

		log.Printf("report %s written: %d orders in %s view, page %d of %d",
			reportID, page.TotalCount, query.Timeframe, query.Page, page.TotalPages)
	},
}

func loadOrders(cfg *models.Config) ([]models.Order, error) {
	if cfg.DataFile != "" {
		return models.LoadOrders(cfg.DataFile)
	}
	factory := factories.NewOrderFactory(cfg.Seed)
	return factory.CreateOrders(cfg.DemoOrders), nil
}

func queryFromConfig(cfg *models.Config) models.TableQuery {
	q := models.DefaultTableQuery()
	if cfg.Timeframe != "" {
		q.Timeframe = cfg.Timeframe
	}
	q.Search = cfg.Search
	q.OrderType = cfg.OrderType
	q.OrderStatus = cfg.OrderStatus
	if cfg.SortBy != "" {
		q.SortBy = cfg.SortBy
	}
	if cfg.SortDir != "" {
		q.SortDir = cfg.SortDir
	}
	if cfg.Page > 0 {
		q.Page = cfg.Page
	}
	return q
}

func newDestination(cfg *models.Config) (dashboard.OutputDestination, error) {
	switch cfg.Output {
	case "", "console":
		return &dashboard.ConsoleOutput{}, nil
	case "json":
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
		return dashboard.NewJSONOutput(cfg.OutputDir), nil
	case "csv":
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
		return dashboard.NewCSVOutput(cfg.OutputDir), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Output)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dishstats.yaml)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for demo data and date backfill")
	rootCmd.Flags().String("timeframe", "today", "Reporting period: today, week or month")
	rootCmd.Flags().String("search", "", "Filter table rows by customer name or order id")
	rootCmd.Flags().String("order-type", "", "Filter table rows by order type")
	rootCmd.Flags().String("order-status", "", "Filter table rows by order status")
	rootCmd.Flags().String("sort-by", "customer_name", "Table sort column: customer_name or total")
	rootCmd.Flags().String("sort-dir", "desc", "Table sort direction: asc or desc")
	rootCmd.Flags().Int("page", 1, "Table page number")
	rootCmd.Flags().String("data", "", "Order file (JSON or CSV); omit to generate demo orders")
	rootCmd.Flags().Int("demo-orders", 200, "Number of demo orders to generate")
	rootCmd.Flags().String("output", "console", "Output format: console, json or csv")
	rootCmd.Flags().String("output-dir", "reports", "Directory for JSON/CSV report files")
	rootCmd.Flags().String("report-time", time.Now().Format(time.RFC3339), "Anchor time for timeframe windows")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dishstats")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
