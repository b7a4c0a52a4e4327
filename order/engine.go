package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spot-account-go/account"
)

// Exchange is the narrow trading surface the engine needs. The production
// implementation is gateway.BinanceRESTClient; tests substitute a mock.
type Exchange interface {
	AccountBalances(ctx context.Context) ([]account.Balance, error)
	OpenOrders(ctx context.Context) ([]Order, error)
	CreateOrder(ctx context.Context, req CreateRequest) (Result, error)
	CancelOrder(ctx context.Context, symbol, orderID string) (Result, error)
}

// ValidationError rejects a malformed command before it reaches the
// exchange. The engine never calls the exchange once validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Config carries the thresholds the view path shares with the account
// valuation.
type Config struct {
	DustQty decimal.Decimal
	Quotes  []string
}

// Engine validates and executes order commands. It is stateless: every
// call works on a fresh exchange snapshot and the exchange remains
// authoritative for order state.
type Engine struct {
	ex  Exchange
	cfg Config
}

func NewEngine(ex Exchange, cfg Config) *Engine {
	return &Engine{ex: ex, cfg: cfg}
}

// PlaceLimit submits a limit order with time-in-force GTC. The symbol is
// upper-cased; everything else is passed through untouched and the
// exchange's echo is returned verbatim.
func (e *Engine) PlaceLimit(ctx context.Context, symbol, side string, qty, price decimal.Decimal) (Result, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Result{}, &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	var s Side
	switch strings.ToLower(side) {
	case "buy":
		s = SideBuy
	case "sell":
		s = SideSell
	default:
		return Result{}, &ValidationError{Field: "side", Reason: fmt.Sprintf("%q is not buy or sell", side)}
	}
	if !qty.IsPositive() {
		return Result{}, &ValidationError{Field: "qty", Reason: "must be > 0"}
	}
	if !price.IsPositive() {
		return Result{}, &ValidationError{Field: "price", Reason: "must be > 0"}
	}
	return e.ex.CreateOrder(ctx, CreateRequest{
		Symbol:      symbol,
		Side:        s,
		Type:        TypeLimit,
		TimeInForce: TimeInForceGTC,
		Quantity:    qty,
		Price:       price,
	})
}

// Cancel cancels one order by symbol and exchange order id.
func (e *Engine) Cancel(ctx context.Context, symbol, orderID string) (Result, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Result{}, &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	if strings.TrimSpace(orderID) == "" {
		return Result{}, &ValidationError{Field: "orderId", Reason: "must not be empty"}
	}
	return e.ex.CancelOrder(ctx, symbol, orderID)
}

// View matches the open-order snapshot against the currently held assets,
// optionally narrowed to one pair symbol. Balances and orders are each
// fetched exactly once.
func (e *Engine) View(ctx context.Context, filterSymbol string) ([]Report, error) {
	balances, err := e.ex.AccountBalances(ctx)
	if err != nil {
		return nil, err
	}
	held := account.Assets(account.FilterBalances(balances, e.cfg.DustQty))
	return e.ViewHeld(ctx, held, filterSymbol)
}

// ViewHeld is View for a caller that already holds a balance snapshot:
// it fetches open orders once and matches them against the given held
// asset set, so valuation and order report can share one snapshot.
func (e *Engine) ViewHeld(ctx context.Context, held []string, filterSymbol string) ([]Report, error) {
	orders, err := e.ex.OpenOrders(ctx)
	if err != nil {
		return nil, err
	}
	return Match(held, orders, filterSymbol, e.cfg.Quotes), nil
}
