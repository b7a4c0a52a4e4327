package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"spot-account-go/config"
	"spot-account-go/gateway"
	"spot-account-go/infrastructure/logger"
	"spot-account-go/order"
)

var cfgPath = flag.String("config", "configs/config.yaml", "path to the YAML config file")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&accountCmd{}, "account")
	commander.Register(&statusCmd{}, "account")

	commander.Register(&viewCmd{}, "orders")
	commander.Register(&buyCmd{placeCmd{side: "buy"}}, "orders")
	commander.Register(&sellCmd{placeCmd{side: "sell"}}, "orders")
	commander.Register(&cancelCmd{}, "orders")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// app bundles the collaborators every subcommand needs. Built fresh per
// invocation; a config or credential problem aborts before any network
// call is made.
type app struct {
	cfg        config.AppConfig
	thresholds config.Thresholds
	log        *logger.Logger
	client     *gateway.BinanceRESTClient
	engine     *order.Engine
}

func newApp(command string) (*app, error) {
	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		return nil, err
	}
	th, err := cfg.Account.Thresholds()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, err
	}
	log = log.WithFields(map[string]interface{}{"command": command})
	client := &gateway.BinanceRESTClient{
		BaseURL:      cfg.Gateway.BaseURL,
		APIKey:       cfg.Gateway.APIKey,
		Secret:       cfg.Gateway.APISecret,
		HTTPClient:   gateway.NewDefaultHTTPClient(),
		RecvWindowMs: cfg.Gateway.RecvWindowMs,
	}
	if cfg.Gateway.RateLimit.Rate > 0 {
		client.Limiter = gateway.NewTokenBucketLimiter(cfg.Gateway.RateLimit.Rate, cfg.Gateway.RateLimit.Burst)
	}
	engine := order.NewEngine(client, order.Config{
		DustQty: th.Qty,
		Quotes:  cfg.Account.Quotes,
	})
	return &app{
		cfg:        cfg,
		thresholds: th,
		log:        log,
		client:     client,
		engine:     engine,
	}, nil
}

func (a *app) close() {
	if a != nil && a.log != nil {
		_ = a.log.Close()
	}
}

// exitFor maps an error to the CLI exit convention: malformed commands
// exit 2, everything else (exchange, pricing, transport) exits 1.
func exitFor(err error) subcommands.ExitStatus {
	var verr *order.ValidationError
	if errors.As(err, &verr) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

func fail(a *app, err error) subcommands.ExitStatus {
	if a != nil && a.log != nil {
		a.log.LogError(err, nil)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return exitFor(err)
}

func printOrderReports(reports []order.Report) {
	if len(reports) == 0 {
		fmt.Println("No open orders.")
		return
	}
	for _, r := range reports {
		fmt.Printf("Order %s (%s): ID %d - %s %s - %s %s Qty %s Price %s %s\n",
			r.Symbol, r.Status, r.OrderID, r.Side, r.Type,
			r.Value.StringFixed(8), r.Unit,
			r.Qty.StringFixed(8),
			r.Price.StringFixed(8), r.Unit)
	}
}
