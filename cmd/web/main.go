package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	apphttp "lunarest.com/app/internal/http"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Database connection
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		log.Fatal("COOKIE_SECRET environment variable is required")
	}

	cfg := apphttp.Config{
		CookieSecret:  []byte(secret),
		SecureCookies: os.Getenv("SECURE_COOKIES") == "1",
		BaseCurrency:  os.Getenv("BASE_CURRENCY"),
		DisplayRates:  parseRates(os.Getenv("DISPLAY_RATES")),
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := apphttp.NewRouter(logger, db, cfg)
	logger.Info("server_starting", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// parseRates reads "USD=1.08,GBP=0.85" into a rate table.
func parseRates(raw string) map[string]float64 {
	rates := map[string]float64{}
	for _, pair := range strings.Split(raw, ",") {
		code, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil || rate <= 0 {
			continue
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates
}
