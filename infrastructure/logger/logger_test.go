package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithFieldsAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &Logger{Logger: zap.New(core), config: DefaultConfig()}

	l.WithFields(map[string]interface{}{"command": "view"}).Info("order_event")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if v, ok := entries[0].ContextMap()["command"]; !ok || v != "view" {
		t.Fatalf("expected command=view field, got %+v", entries[0].ContextMap())
	}
}

func TestLogOrderCarriesEventAndSymbol(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &Logger{Logger: zap.New(core), config: DefaultConfig()}

	l.LogOrder("place", "ETHBTC", nil)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["event"] != "place" || ctx["symbol"] != "ETHBTC" {
		t.Fatalf("unexpected fields %+v", ctx)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
