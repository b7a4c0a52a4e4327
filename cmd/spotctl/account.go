package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"spot-account-go/account"
)

// accountCmd prints the account status, the portfolio valuation in the
// reference quote asset, and the open orders attributed to held assets.
type accountCmd struct{}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "show account status, valuation and open orders" }
func (*accountCmd) Usage() string {
	return `spotctl account

  Values every material balance against the configured quote asset and
  lists the open orders belonging to held assets.
`
}
func (*accountCmd) SetFlags(*flag.FlagSet) {}

func (c *accountCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp("account")
	if err != nil {
		return fail(a, err)
	}
	defer a.close()

	status, err := a.client.AccountStatus(ctx)
	if err != nil {
		return fail(a, err)
	}
	a.log.Info("account status", zap.String("status", status))

	tickers, err := a.client.AllTickers(ctx)
	if err != nil {
		return fail(a, err)
	}
	idx := account.BuildPriceIndex(tickers, a.cfg.Account.Quotes)

	balances, err := a.client.AccountBalances(ctx)
	if err != nil {
		return fail(a, err)
	}
	held := account.FilterBalances(balances, a.thresholds.Qty)

	report, err := account.Value(held, idx, a.cfg.Account.QuoteAsset, a.thresholds.Value)
	if err != nil {
		return fail(a, err)
	}
	printValuation(report)

	// same balance snapshot as the valuation above
	reports, err := a.engine.ViewHeld(ctx, account.Assets(held), "")
	if err != nil {
		return fail(a, err)
	}
	printOrderReports(reports)

	return subcommands.ExitSuccess
}

func printValuation(rep account.Report) {
	for _, l := range rep.Lines {
		fmt.Printf("Coin %s\n\tstill free: %9s\n\tin order:  %9s\n\tprice:     %9s %s\n\tvalue:     %9s %s\n",
			l.Asset,
			l.Free.StringFixed(2),
			l.Locked.StringFixed(2),
			l.Price.StringFixed(2), rep.Quote,
			l.Value.StringFixed(2), rep.Quote)
	}
	fmt.Printf("Total: %9s %s\n", rep.Total.StringFixed(2), rep.Quote)
}

// statusCmd prints only the account trading status.
type statusCmd struct{}

func (*statusCmd) Name() string           { return "status" }
func (*statusCmd) Synopsis() string       { return "show the account trading status" }
func (*statusCmd) Usage() string          { return "spotctl status\n" }
func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (c *statusCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp("status")
	if err != nil {
		return fail(a, err)
	}
	defer a.close()

	status, err := a.client.AccountStatus(ctx)
	if err != nil {
		return fail(a, err)
	}
	fmt.Println(status)
	return subcommands.ExitSuccess
}
