package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"time"
)

// swappable for deterministic request signing in tests
var timeNowMillis = func() int64 { return time.Now().UnixMilli() }

// SignParams encodes params as a canonical (sorted) query string and
// returns it together with its HMAC-SHA256 signature under secret. The
// signature covers exactly the returned query string.
func SignParams(params map[string]string, secret string) (query, signature string) {
	vals := url.Values{}
	for k, v := range params {
		vals.Set(k, v)
	}
	query = vals.Encode()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(query))
	signature = hex.EncodeToString(mac.Sum(nil))
	return query, signature
}
