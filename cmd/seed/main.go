// Command seed populates the store with a small set of demo reference data.
// It goes through the same services as the web handlers, so seeded rows obey
// the exact persistence rules the application uses.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/poseidontrading/poseidon/internal/bid"
	"github.com/poseidontrading/poseidon/internal/config"
	"github.com/poseidontrading/poseidon/internal/curvepoint"
	"github.com/poseidontrading/poseidon/internal/database"
	"github.com/poseidontrading/poseidon/internal/rating"
	"github.com/poseidontrading/poseidon/internal/rulename"
	"github.com/poseidontrading/poseidon/internal/trade"
	"github.com/poseidontrading/poseidon/internal/types"
)

func init() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	zlog.Logger = zerolog.New(output).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to initialize database")
	}

	if err := database.SeedAdminUser(db, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		zlog.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	bidService := bid.NewService(db)
	curvePointService := curvepoint.NewService(db)
	ratingService := rating.NewService(db)
	tradeService := trade.NewService(db)
	ruleNameService := rulename.NewService(db)

	asOf := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC)
	tradeDate := time.Date(2026, time.January, 5, 14, 30, 0, 0, time.UTC)

	bids := []types.Bid{
		{Account: "ACC-EQ-01", Type: "Buy", BidQuantity: f(250), Bid: f(101.25), Security: "EQT-ALPHA", Status: "OPEN", Trader: "jdoe"},
		{Account: "ACC-EQ-02", Type: "Sell", AskQuantity: f(120), Ask: f(98.4), Security: "EQT-BETA", Status: "OPEN", Trader: "mlee"},
	}
	for i := range bids {
		if err := bidService.CreateBid(&bids[i]); err != nil {
			zlog.Fatal().Err(err).Msg("Failed to seed bids")
		}
	}

	points := []types.CurvePoint{
		{CurveID: 10, AsOfDate: &asOf, Term: f(0.5), Value: f(3.12)},
		{CurveID: 10, AsOfDate: &asOf, Term: f(1), Value: f(3.38)},
		{CurveID: 10, AsOfDate: &asOf, Term: f(5), Value: f(3.91)},
	}
	for i := range points {
		if err := curvePointService.CreateCurvePoint(&points[i]); err != nil {
			zlog.Fatal().Err(err).Msg("Failed to seed curve points")
		}
	}

	ratings := []types.Rating{
		{MoodysRating: "Aaa", SandPRating: "AAA", FitchRating: "AAA", OrderNumber: n(1)},
		{MoodysRating: "Baa2", SandPRating: "BBB", FitchRating: "BBB", OrderNumber: n(9)},
	}
	for i := range ratings {
		if err := ratingService.CreateRating(&ratings[i]); err != nil {
			zlog.Fatal().Err(err).Msg("Failed to seed ratings")
		}
	}

	trades := []types.Trade{
		{Account: "ACC-EQ-01", Type: "Equity", BuyQuantity: f(250), BuyPrice: f(101.3), TradeDate: &tradeDate, Security: "EQT-ALPHA", Status: "DONE", Trader: "jdoe", Book: "B1"},
		{Account: "ACC-FI-03", Type: "Bond", SellQuantity: f(1000), SellPrice: f(99.87), TradeDate: &tradeDate, Security: "GOV-10Y", Status: "DONE", Trader: "mlee", Book: "B2"},
	}
	for i := range trades {
		if err := tradeService.CreateTrade(&trades[i]); err != nil {
			zlog.Fatal().Err(err).Msg("Failed to seed trades")
		}
	}

	rules := []types.RuleName{
		{Name: "LowLiquidity", Description: "Flags securities trading under volume floor", Json: `{"volume_floor": 1000}`, SQLStr: "SELECT * FROM trade WHERE buy_quantity < 1000"},
	}
	for i := range rules {
		if err := ruleNameService.CreateRuleName(&rules[i]); err != nil {
			zlog.Fatal().Err(err).Msg("Failed to seed rules")
		}
	}

	zlog.Info().
		Int("bids", len(bids)).
		Int("curve_points", len(points)).
		Int("ratings", len(ratings)).
		Int("trades", len(trades)).
		Int("rules", len(rules)).
		Msg("Demo data seeded")
}

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }
