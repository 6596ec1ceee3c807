package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/uhyunpark/matchbook/params"
	"github.com/uhyunpark/matchbook/pkg/book"
	"github.com/uhyunpark/matchbook/pkg/render"
	"github.com/uhyunpark/matchbook/pkg/tick"
	"github.com/uhyunpark/matchbook/pkg/util"
)

func main() {
	// Load config from .env file and environment variables
	cfg := params.LoadFromEnv("")

	var logger *zap.Logger
	var err error
	if cfg.Log.File != "" {
		logger, err = util.NewLoggerWithFile(cfg.Log.File)
	} else {
		logger, err = util.NewLogger()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	quantizer, err := tick.NewQuantizer(cfg.Market.TickSize)
	if err != nil {
		sugar.Fatalw("quantizer_init_failed", "err", err)
	}

	engine := book.NewEngine(quantizer)
	renderer := render.New(quantizer, cfg.Display.ColumnWidth)
	seq := &util.Counter{}

	sugar.Infow("engine_started",
		"tick_size", cfg.Market.TickSize.String(),
		"column_width", cfg.Display.ColumnWidth)

	fmt.Println("Enter orders in format <Side> <Quantity> <Price>")

	// Token stream, not line stream: a submission is any three
	// whitespace-separated tokens, matching the reference input format.
	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	for {
		side, ok := next()
		if !ok {
			break
		}
		qty, ok := next()
		if !ok {
			break
		}
		price, ok := next()
		if !ok {
			break
		}

		n := seq.Next()
		trades, err := engine.Submit(side, qty, price, n)
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			fmt.Println("Ignoring input. Please re-enter:")
			sugar.Warnw("order_rejected",
				"side", side, "qty", qty, "price", price, "err", err)
			continue
		}

		sugar.Infow("order_accepted",
			"seq", n, "side", side, "qty", qty, "price", price,
			"trades", len(trades))
		for _, t := range trades {
			sugar.Infow("trade", "qty", t.Qty, "price", quantizer.Format(t.Price))
		}

		if err := renderer.WriteTrades(os.Stdout, trades); err != nil {
			sugar.Fatalw("write_failed", "err", err)
		}
		if err := renderer.WriteBook(os.Stdout, engine.Bids().Snapshot(), engine.Asks().Snapshot()); err != nil {
			sugar.Fatalw("write_failed", "err", err)
		}
	}

	if err := sc.Err(); err != nil {
		sugar.Fatalw("stdin_read_failed", "err", err)
	}
}
