package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"spot-account-go/account"
	"spot-account-go/order"
)

// BinanceRESTClient calls the Binance spot REST API. HTTPClient is
// injectable so tests can point it at an httptest server; no call is ever
// retried here, transport and exchange failures go straight back to the
// caller.
type BinanceRESTClient struct {
	BaseURL      string
	APIKey       string
	Secret       string
	HTTPClient   *http.Client
	RecvWindowMs int64
	Limiter      RateLimiter
}

// APIError is a non-2xx response decoded from the exchange error body.
type APIError struct {
	HTTPStatus int
	Code       int    `json:"code"`
	Message    string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange error %d (code %d): %s", e.HTTPStatus, e.Code, e.Message)
}

// AccountStatus returns the account trading status string.
func (c *BinanceRESTClient) AccountStatus(ctx context.Context) (string, error) {
	var resp struct {
		Data string `json:"data"`
	}
	if err := c.doSigned(ctx, http.MethodGet, "/sapi/v1/account/status", nil, &resp); err != nil {
		return "", err
	}
	return resp.Data, nil
}

// AllTickers fetches the full price ticker snapshot (public endpoint).
func (c *BinanceRESTClient) AllTickers(ctx context.Context) ([]account.Ticker, error) {
	var tickers []account.Ticker
	if err := c.do(ctx, http.MethodGet, "/api/v3/ticker/price", "", &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// AccountBalances fetches the per-asset balances of the account.
func (c *BinanceRESTClient) AccountBalances(ctx context.Context) ([]account.Balance, error) {
	var resp struct {
		Balances []account.Balance `json:"balances"`
	}
	if err := c.doSigned(ctx, http.MethodGet, "/api/v3/account", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Balances, nil
}

// OpenOrders fetches all open orders across symbols.
func (c *BinanceRESTClient) OpenOrders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := c.doSigned(ctx, http.MethodGet, "/api/v3/openOrders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits a new order and returns the exchange's echo.
func (c *BinanceRESTClient) CreateOrder(ctx context.Context, req order.CreateRequest) (order.Result, error) {
	params := map[string]string{
		"symbol":      req.Symbol,
		"side":        string(req.Side),
		"type":        req.Type,
		"timeInForce": req.TimeInForce,
		"quantity":    req.Quantity.String(),
		"price":       req.Price.String(),
	}
	var res order.Result
	if err := c.doSigned(ctx, http.MethodPost, "/api/v3/order", params, &res); err != nil {
		return order.Result{}, err
	}
	return res, nil
}

// CancelOrder cancels one order and returns the cancelled order's echo.
func (c *BinanceRESTClient) CancelOrder(ctx context.Context, symbol, orderID string) (order.Result, error) {
	params := map[string]string{
		"symbol":  symbol,
		"orderId": orderID,
	}
	var res order.Result
	if err := c.doSigned(ctx, http.MethodDelete, "/api/v3/order", params, &res); err != nil {
		return order.Result{}, err
	}
	return res, nil
}

// doSigned adds timestamp/recvWindow, signs the query and performs the call.
func (c *BinanceRESTClient) doSigned(ctx context.Context, method, path string, params map[string]string, out any) error {
	signed := make(map[string]string, len(params)+2)
	for k, v := range params {
		signed[k] = v
	}
	signed["timestamp"] = strconv.FormatInt(timeNowMillis(), 10)
	if c.RecvWindowMs > 0 {
		signed["recvWindow"] = strconv.FormatInt(c.RecvWindowMs, 10)
	}
	query, sig := SignParams(signed, c.Secret)
	return c.do(ctx, method, path, query+"&signature="+url.QueryEscape(sig), out)
}

func (c *BinanceRESTClient) do(ctx context.Context, method, path, rawQuery string, out any) error {
	if c == nil || c.HTTPClient == nil {
		return fmt.Errorf("http client not set")
	}
	if c.Limiter != nil {
		c.Limiter.Wait()
	}
	endpoint := c.BaseURL + path
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("X-MBX-APIKEY", c.APIKey)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// NewDefaultHTTPClient provides an http.Client with a sane timeout.
func NewDefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
