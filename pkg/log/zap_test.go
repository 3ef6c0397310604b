package log

import (
	"context"
	"testing"
)

func TestMsgAndKV(t *testing.T) {
	tests := []struct {
		name    string
		arg     []any
		wantMsg string
		wantKV  int
	}{
		{"empty", nil, "", 0},
		{"message only", []any{"hello"}, "hello", 0},
		{"message with pairs", []any{"hello", "k", 1, "k2", "v"}, "hello", 4},
		{"concatenated", []any{"a: ", 3}, "a: 3", 0},
		{"non-string first", []any{42}, "42", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := msg(tt.arg); got != tt.wantMsg {
				t.Errorf("msg() = %q, want %q", got, tt.wantMsg)
			}
			if got := kv(tt.arg); len(got) != tt.wantKV {
				t.Errorf("kv() len = %d, want %d", len(got), tt.wantKV)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", got)
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on empty ctx = %q, want empty", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON})
	l.Info(context.Background(), "started", "port", 8080)
	l.Debugf(context.Background(), "hidden %d", 1)

	nop := NewNop()
	nop.Warn(context.Background(), "ignored")
}
