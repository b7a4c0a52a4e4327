package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// viewCmd lists open orders, optionally narrowed to one pair symbol.
type viewCmd struct {
	symbol string
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "list open orders for held assets" }
func (*viewCmd) Usage() string {
	return `spotctl view [-s <symbol>]

  Lists open orders attributed to held assets. With -s only orders of
  that exact pair (e.g. ETHBTC) are shown.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "pair symbol to filter on, e.g. ETHBTC")
}

func (c *viewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp("view")
	if err != nil {
		return fail(a, err)
	}
	defer a.close()

	reports, err := a.engine.View(ctx, c.symbol)
	if err != nil {
		return fail(a, err)
	}
	printOrderReports(reports)
	return subcommands.ExitSuccess
}

// placeCmd is the shared implementation of buy and sell.
type placeCmd struct {
	side   string
	symbol string
	qty    string
	price  string
}

func (c *placeCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "pair symbol, e.g. ETHBTC")
	f.StringVar(&c.qty, "q", "", "order quantity in base asset units")
	f.StringVar(&c.price, "p", "", "limit price in quote asset units")
}

func (c *placeCmd) execute(ctx context.Context) subcommands.ExitStatus {
	qty, err := decimal.NewFromString(c.qty)
	if err != nil {
		fmt.Printf("Error: invalid qty %q: %v\n", c.qty, err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Printf("Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	a, err := newApp(c.side)
	if err != nil {
		return fail(a, err)
	}
	defer a.close()

	res, err := a.engine.PlaceLimit(ctx, c.symbol, c.side, qty, price)
	if err != nil {
		return fail(a, err)
	}
	a.log.LogOrder("place", res.Symbol, map[string]interface{}{
		"side":  res.Side,
		"qty":   res.OrigQty.String(),
		"price": res.Price.String(),
	})
	fmt.Printf("%s::%s order of %s - Price %s Qty %s\n",
		res.Status, res.Side, res.Symbol, res.Price.String(), res.OrigQty.String())
	return subcommands.ExitSuccess
}

type buyCmd struct{ placeCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "place a buy limit order (GTC)" }
func (*buyCmd) Usage() string {
	return "spotctl buy -s <symbol> -q <qty> -p <price>\n"
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *buyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(ctx)
}

type sellCmd struct{ placeCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "place a sell limit order (GTC)" }
func (*sellCmd) Usage() string {
	return "spotctl sell -s <symbol> -q <qty> -p <price>\n"
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *sellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(ctx)
}

// cancelCmd cancels one order by symbol and order id.
type cancelCmd struct {
	symbol  string
	orderID string
}

func (*cancelCmd) Name() string     { return "cancel" }
func (*cancelCmd) Synopsis() string { return "cancel an open order" }
func (*cancelCmd) Usage() string {
	return "spotctl cancel -s <symbol> -i <order-id>\n"
}

func (c *cancelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "pair symbol, e.g. ETHBTC")
	f.StringVar(&c.orderID, "i", "", "exchange order id to cancel")
}

func (c *cancelCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp("cancel")
	if err != nil {
		return fail(a, err)
	}
	defer a.close()

	res, err := a.engine.Cancel(ctx, c.symbol, c.orderID)
	if err != nil {
		return fail(a, err)
	}
	a.log.LogOrder("cancel", res.Symbol, map[string]interface{}{
		"orderId": res.OrderID,
		"status":  res.Status,
	})
	fmt.Printf("%s::%s order of %s - Price %s Qty %s\n",
		res.Status, res.Side, res.Symbol, res.Price.String(), res.OrigQty.String())
	return subcommands.ExitSuccess
}
