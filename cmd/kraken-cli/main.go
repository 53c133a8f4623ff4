package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/betbot/gokraken/kraken/client"
	"github.com/betbot/gokraken/kraken/signing"
	"github.com/betbot/gokraken/pkg/config"
	"github.com/betbot/gokraken/pkg/logger"
	"github.com/betbot/gokraken/pkg/ratelimit"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: kraken-cli [-config file] <command> [args]

commands:
  time                         server time
  status                       system status
  ticker <pair>                ticker for one or more pairs
  depth <pair>                 order book
  balance                      account balances (private)
  open-orders                  open orders (private)
  add-order <pair> <buy|sell> <ordertype> <volume> [price]
                               validate-only order submission (private)
  cancel <txid>                cancel an order (private)
`)
	os.Exit(2)
}

func main() {
	configPath := flag.String("config", "", "yaml config file")
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	// .env is a convenience for local use; real deployments pass the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputFile: cfg.Log.OutputFile,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := client.Options{
		BaseURL: cfg.BaseURL,
		Version: cfg.APIVersion,
		Timeout: cfg.Timeout(),
		Proxy:   cfg.Proxy,
		Key:     cfg.APIKey,
		Secret:  cfg.APISecret,
		Logger:  logger.Logger,
	}
	switch {
	case cfg.OTPStatic != "":
		opts.OTP = signing.StaticOTP(cfg.OTPStatic)
	case cfg.OTPAppKey != "":
		opts.OTP = signing.NewTOTPProvider(cfg.OTPAppKey)
	}
	if cfg.RateLimit.Limit > 0 {
		opts.RateLimit = ratelimit.NewCounter(cfg.RateLimit.Limit, cfg.RateLimit.DecayPerSec)
	}

	c, err := client.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(context.Background(), c, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "time":
		return dump(c.Time(ctx))
	case "status":
		return dump(c.SystemStatus(ctx))
	case "ticker":
		if len(rest) < 1 {
			usage()
		}
		return dump(c.Ticker(ctx, strings.Join(rest, ",")))
	case "depth":
		if len(rest) < 1 {
			usage()
		}
		return dump(c.Depth(ctx, rest[0], 10))
	case "balance":
		return dump(c.Balance(ctx))
	case "open-orders":
		return dump(c.OpenOrders(ctx, nil))
	case "add-order":
		if len(rest) < 4 {
			usage()
		}
		volume, err := decimal.NewFromString(rest[3])
		if err != nil {
			return fmt.Errorf("bad volume %q: %w", rest[3], err)
		}
		req := client.AddOrderRequest{
			Pair:      rest[0],
			Type:      rest[1],
			OrderType: rest[2],
			Volume:    volume,
			Validate:  true, // the cli never places live orders
		}
		if len(rest) > 4 {
			price, err := decimal.NewFromString(rest[4])
			if err != nil {
				return fmt.Errorf("bad price %q: %w", rest[4], err)
			}
			req.Price = price
		}
		return dump(c.AddOrder(ctx, req))
	case "cancel":
		if len(rest) < 1 {
			usage()
		}
		return dump(c.CancelOrder(ctx, rest[0]))
	default:
		usage()
		return nil
	}
}

func dump(v any, err error) error {
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
