package order

import (
	"context"
	"errors"
	"testing"

	"spot-account-go/account"
)

type mockExchange struct {
	balances []account.Balance
	orders   []Order

	created    []CreateRequest
	canceled   []string
	balanceGet int
	ordersGet  int

	errCreate error
	errCancel error
}

func (m *mockExchange) AccountBalances(context.Context) ([]account.Balance, error) {
	m.balanceGet++
	return m.balances, nil
}

func (m *mockExchange) OpenOrders(context.Context) ([]Order, error) {
	m.ordersGet++
	return m.orders, nil
}

func (m *mockExchange) CreateOrder(_ context.Context, req CreateRequest) (Result, error) {
	m.created = append(m.created, req)
	if m.errCreate != nil {
		return Result{}, m.errCreate
	}
	return Result{
		Symbol:  req.Symbol,
		OrderID: 1001,
		Status:  StatusNew,
		Side:    req.Side,
		Price:   req.Price,
		OrigQty: req.Quantity,
	}, nil
}

func (m *mockExchange) CancelOrder(_ context.Context, symbol, orderID string) (Result, error) {
	m.canceled = append(m.canceled, symbol+"/"+orderID)
	if m.errCancel != nil {
		return Result{}, m.errCancel
	}
	return Result{Symbol: symbol, Status: StatusCanceled}, nil
}

func newTestEngine(ex Exchange) *Engine {
	return NewEngine(ex, Config{
		DustQty: d("0.5"),
		Quotes:  []string{"USDT", "BTC"},
	})
}

func TestPlaceLimitValidation(t *testing.T) {
	cases := []struct {
		name   string
		symbol string
		side   string
		qty    string
		price  string
	}{
		{"missing symbol", "", "buy", "1", "100"},
		{"bad side", "ETHBTC", "hold", "1", "100"},
		{"zero qty", "ETHBTC", "buy", "0", "100"},
		{"negative qty", "ETHBTC", "sell", "-5", "100"},
		{"zero price", "ETHBTC", "buy", "1", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ex := &mockExchange{}
			e := newTestEngine(ex)
			_, err := e.PlaceLimit(context.Background(), tc.symbol, tc.side, d(tc.qty), d(tc.price))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(ex.created) != 0 {
				t.Fatalf("exchange must not be called on validation failure")
			}
		})
	}
}

func TestPlaceLimitSubmitsGTCLimit(t *testing.T) {
	ex := &mockExchange{}
	e := newTestEngine(ex)

	res, err := e.PlaceLimit(context.Background(), "ethbtc", "sell", d("2"), d("0.05"))
	if err != nil {
		t.Fatalf("place err: %v", err)
	}
	if len(ex.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(ex.created))
	}
	req := ex.created[0]
	if req.Symbol != "ETHBTC" {
		t.Fatalf("symbol must be upper-cased, got %s", req.Symbol)
	}
	if req.Type != TypeLimit || req.TimeInForce != TimeInForceGTC {
		t.Fatalf("expected LIMIT/GTC, got %s/%s", req.Type, req.TimeInForce)
	}
	if req.Side != SideSell {
		t.Fatalf("expected SELL, got %s", req.Side)
	}
	if res.Status != StatusNew || !res.OrigQty.Equal(d("2")) {
		t.Fatalf("result must echo the exchange: %+v", res)
	}
}

func TestPlaceLimitPropagatesExchangeError(t *testing.T) {
	ex := &mockExchange{errCreate: errors.New("rate limited")}
	e := newTestEngine(ex)
	_, err := e.PlaceLimit(context.Background(), "ETHBTC", "buy", d("1"), d("0.05"))
	if err == nil || err.Error() != "rate limited" {
		t.Fatalf("exchange error must pass through unchanged, got %v", err)
	}
}

func TestCancelValidation(t *testing.T) {
	ex := &mockExchange{}
	e := newTestEngine(ex)

	var verr *ValidationError
	if _, err := e.Cancel(context.Background(), "", "123"); !errors.As(err, &verr) {
		t.Fatalf("missing symbol must fail validation, got %v", err)
	}
	if _, err := e.Cancel(context.Background(), "ETHBTC", ""); !errors.As(err, &verr) {
		t.Fatalf("missing order id must fail validation, got %v", err)
	}
	if len(ex.canceled) != 0 {
		t.Fatalf("exchange must not be called on validation failure")
	}
}

func TestCancelCallsExchange(t *testing.T) {
	ex := &mockExchange{}
	e := newTestEngine(ex)
	res, err := e.Cancel(context.Background(), "ethbtc", "123")
	if err != nil {
		t.Fatalf("cancel err: %v", err)
	}
	if res.Status != StatusCanceled {
		t.Fatalf("expected CANCELED echo, got %s", res.Status)
	}
	if len(ex.canceled) != 1 || ex.canceled[0] != "ETHBTC/123" {
		t.Fatalf("unexpected cancel calls %v", ex.canceled)
	}
}

func TestViewFetchesSnapshotsOnce(t *testing.T) {
	ex := &mockExchange{
		balances: []account.Balance{
			{Asset: "ETH", Free: d("3"), Locked: d("0")},
			{Asset: "BTC", Free: d("1"), Locked: d("0")},
			{Asset: "XRP", Free: d("0.4"), Locked: d("0")}, // dust, not held
		},
		orders: []Order{
			{Symbol: "ETHBTC", OrderID: 7, OrigQty: d("2"), Price: d("0.05")},
			{Symbol: "XRPUSDT", OrderID: 8, OrigQty: d("100"), Price: d("1")},
		},
	}
	e := newTestEngine(ex)

	got, err := e.View(context.Background(), "")
	if err != nil {
		t.Fatalf("view err: %v", err)
	}
	if len(got) != 1 || got[0].Symbol != "ETHBTC" {
		t.Fatalf("expected only the held asset's order, got %+v", got)
	}
	if ex.balanceGet != 1 || ex.ordersGet != 1 {
		t.Fatalf("each snapshot must be fetched exactly once, got %d/%d", ex.balanceGet, ex.ordersGet)
	}
}

func TestViewHeldReusesBalanceSnapshot(t *testing.T) {
	ex := &mockExchange{
		orders: []Order{
			{Symbol: "ETHBTC", OrderID: 7, OrigQty: d("2"), Price: d("0.05")},
		},
	}
	e := newTestEngine(ex)

	got, err := e.ViewHeld(context.Background(), []string{"ETH"}, "")
	if err != nil {
		t.Fatalf("view err: %v", err)
	}
	if len(got) != 1 || got[0].Symbol != "ETHBTC" {
		t.Fatalf("expected the held asset's order, got %+v", got)
	}
	if ex.balanceGet != 0 {
		t.Fatalf("a caller-provided held set must not trigger a balance fetch, got %d", ex.balanceGet)
	}
	if ex.ordersGet != 1 {
		t.Fatalf("open orders must be fetched exactly once, got %d", ex.ordersGet)
	}
}

func TestViewFilterSymbol(t *testing.T) {
	ex := &mockExchange{
		balances: []account.Balance{
			{Asset: "ETH", Free: d("3"), Locked: d("0")},
		},
		orders: []Order{
			{Symbol: "ETHBTC", OrderID: 7, OrigQty: d("2"), Price: d("0.05")},
			{Symbol: "ETHUSDT", OrderID: 8, OrigQty: d("1"), Price: d("100")},
		},
	}
	e := newTestEngine(ex)

	got, err := e.View(context.Background(), "ethusdt")
	if err != nil {
		t.Fatalf("view err: %v", err)
	}
	if len(got) != 1 || got[0].OrderID != 8 {
		t.Fatalf("expected only ETHUSDT, got %+v", got)
	}
}
