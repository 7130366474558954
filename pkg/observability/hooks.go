// Package observability provides hooks for instrumenting API calls.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about outgoing HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for HTTP events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the client library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// The transport layer calls hooks to emit events:
//
//	observability.HTTP().OnRequest(ctx, requestID, method, host, path)
//	// ... perform request ...
//	observability.HTTP().OnResponse(ctx, requestID, method, host, path, status, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// HTTPHooks receives events from HTTP client operations.
// The requestID is the X-Request-Id value attached to the outgoing request,
// useful for correlating client events with remote-side logs.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, requestID, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, requestID, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, requestID, method, host, path string, err error)
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string, string) {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, string, int, time.Duration) {
}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, string, error) {}

var (
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any API calls.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = NoopHTTPHooks{}
}
