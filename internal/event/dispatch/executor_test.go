package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type testHandler struct {
	fn func(ctx context.Context, event any) error
}

func (h *testHandler) Handle(ctx context.Context, event any) error {
	return h.fn(ctx, event)
}

func TestExecutor_Execute_Success(t *testing.T) {
	e := NewExecutor()
	called := false

	result := e.Execute(context.Background(), "payload", &testHandler{
		fn: func(ctx context.Context, event any) error {
			called = true
			if event != "payload" {
				t.Errorf("expected payload, got %v", event)
			}
			return nil
		},
	})

	if !called {
		t.Fatal("handler was not called")
	}
	if !result.IsSuccess() {
		t.Errorf("expected success, got %+v", result)
	}
}

func TestExecutor_Execute_Error(t *testing.T) {
	e := NewExecutor()
	errBoom := errors.New("boom")

	result := e.Execute(context.Background(), nil, &testHandler{
		fn: func(ctx context.Context, event any) error {
			return errBoom
		},
	})

	if result.IsSuccess() {
		t.Error("expected failure")
	}
	if !errors.Is(result.Err, errBoom) {
		t.Errorf("expected boom error, got %v", result.Err)
	}
	if result.Panicked {
		t.Error("error should not be reported as panic")
	}
}

func TestExecutor_Execute_Panic(t *testing.T) {
	e := NewExecutor()

	result := e.Execute(context.Background(), nil, &testHandler{
		fn: func(ctx context.Context, event any) error {
			panic("explosion")
		},
	})

	if !result.Panicked {
		t.Fatal("expected panic to be recovered")
	}
	if result.PanicValue != "explosion" {
		t.Errorf("expected panic value 'explosion', got %v", result.PanicValue)
	}
	if !strings.Contains(string(result.PanicStack), "goroutine") {
		t.Error("expected a captured stack trace")
	}
	if result.Success {
		t.Error("panicked handler must not be marked successful")
	}
}

func TestExecutor_Execute_CancelledContext(t *testing.T) {
	e := NewExecutor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	result := e.Execute(ctx, nil, &testHandler{
		fn: func(ctx context.Context, event any) error {
			called = true
			return nil
		},
	})

	if called {
		t.Error("handler must not run with a cancelled context")
	}
	if !result.Skipped {
		t.Errorf("expected skipped result, got %+v", result)
	}
}
