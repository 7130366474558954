package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "req-1", "GET", "www.startuppong.com", "/api/v1/get_players")
	h.OnResponse(ctx, "req-1", "GET", "www.startuppong.com", "/api/v1/get_players", 200, time.Second)
	h.OnError(ctx, "req-1", "GET", "www.startuppong.com", "/api/v1/get_players", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify default is noop
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)
	if HTTP() != custom {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)

	// Setting nil should be ignored
	SetHTTPHooks(nil)

	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}

	Reset()
}

type testHTTPHooks struct{ NoopHTTPHooks }
