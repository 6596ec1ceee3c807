package params

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Market struct {
	// TickSize is the smallest representable price increment. Every
	// price is quantized to an integer multiple of it at the boundary.
	TickSize decimal.Decimal
}

type Display struct {
	// ColumnWidth is the fixed width of each book column (BUY / SELL).
	ColumnWidth int
}

type Log struct {
	// File is an optional log file path; empty means stderr only.
	File string
}

type Config struct {
	Market  Market
	Display Display
	Log     Log
}

func Default() Config {
	return Config{
		Market: Market{
			TickSize: decimal.New(1, -3), // 0.001
		},
		Display: Display{
			ColumnWidth: 15,
		},
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: ENV > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	// Optional .env file; missing file is fine.
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if tickSize := os.Getenv("TICK_SIZE"); tickSize != "" {
		if d, err := decimal.NewFromString(tickSize); err == nil && d.IsPositive() {
			cfg.Market.TickSize = d
		}
	}

	if width := os.Getenv("COLUMN_WIDTH"); width != "" {
		if n, err := strconv.Atoi(width); err == nil && n > 0 {
			cfg.Display.ColumnWidth = n
		}
	}

	if file := os.Getenv("LOG_FILE"); file != "" {
		cfg.Log.File = file
	}

	return cfg
}
