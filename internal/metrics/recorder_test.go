package metrics

import (
	"context"
	"testing"
	"time"
)

type countingRecorder struct {
	calls int
}

func (c *countingRecorder) RecordToolCall(ctx context.Context, tool string, status string, duration time.Duration) {
	c.calls++
}

func TestCombine(t *testing.T) {
	if Combine() != nil || Combine(nil, nil) != nil {
		t.Fatalf("expected nil recorder when none is given")
	}

	single := &countingRecorder{}
	if Combine(nil, single) != single {
		t.Fatalf("expected the single recorder to be returned as is")
	}

	a, b := &countingRecorder{}, &countingRecorder{}
	Combine(a, b).RecordToolCall(context.Background(), "gw_get_user", "success", time.Millisecond)
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("expected both recorders to be called, got %d and %d", a.calls, b.calls)
	}
}
