package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/pongtrack/startuppong/pkg/errors"
	"github.com/pongtrack/startuppong/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"Accept": "application/json"}
	client := NewClient(nil, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.headers["Accept"] != "application/json" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientNilHeaders(t *testing.T) {
	client := NewClient(nil, nil)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.headers != nil {
		t.Error("NewClient() should allow nil headers")
	}
}

func TestClientGetJSON(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id header to be set")
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	var resp response
	err := client.GetJSON(context.Background(), server.URL, &resp)
	if err != nil {
		t.Fatalf("GetJSON() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("GetJSON() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetJSONSendsDefaultHeaders(t *testing.T) {
	var receivedHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeader = r.Header.Get("X-Default")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.Client(), map[string]string{"X-Default": "default"})

	var resp map[string]string
	if err := client.GetJSON(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("GetJSON() error: %v", err)
	}
	if receivedHeader != "default" {
		t.Errorf("default header = %q, want %q", receivedHeader, "default")
	}
}

func TestClientGetJSONDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	var resp map[string]string
	err := client.GetJSON(context.Background(), server.URL, &resp)
	if err == nil {
		t.Fatal("GetJSON() expected error for malformed JSON")
	}
	if !errors.Is(err, errors.ErrCodeDecode) {
		t.Errorf("GetJSON() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDecode)
	}
}

func TestClientGetJSONStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	var resp map[string]string
	err := client.GetJSON(context.Background(), server.URL, &resp)
	if err == nil {
		t.Fatal("GetJSON() expected error for 403 response")
	}
	if !errors.Is(err, errors.ErrCodeStatus) {
		t.Errorf("GetJSON() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeStatus)
	}
}

func TestClientGetJSONNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rawURL := server.URL
	server.Close() // connection will be refused

	client := NewClient(nil, nil)

	var resp map[string]string
	err := client.GetJSON(context.Background(), rawURL, &resp)
	if err == nil {
		t.Fatal("GetJSON() expected error for unreachable server")
	}
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("GetJSON() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeNetwork)
	}
}

func TestClientPostForm(t *testing.T) {
	var (
		receivedContentType string
		receivedBody        url.Values
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		receivedContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error: %v", err)
		}
		receivedBody = r.PostForm
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	form := url.Values{}
	form.Set("winner_id", "55")
	form.Set("loser_id", "60")
	if err := client.PostForm(context.Background(), server.URL, form); err != nil {
		t.Fatalf("PostForm() error: %v", err)
	}

	if receivedContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form-urlencoded", receivedContentType)
	}
	if receivedBody.Get("winner_id") != "55" || receivedBody.Get("loser_id") != "60" {
		t.Errorf("form body = %v, want winner_id=55 loser_id=60", receivedBody)
	}
}

func TestClientPostFormStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	err := client.PostForm(context.Background(), server.URL, url.Values{})
	if err == nil {
		t.Fatal("PostForm() expected error for 400 response")
	}
	if !errors.Is(err, errors.ErrCodeStatus) {
		t.Errorf("PostForm() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeStatus)
	}
}

func TestClientEmitsHTTPHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	hooks := &recordingHooks{}
	observability.SetHTTPHooks(hooks)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil)

	var resp map[string]string
	if err := client.GetJSON(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("GetJSON() error: %v", err)
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.requests != 1 {
		t.Errorf("OnRequest calls = %d, want 1", hooks.requests)
	}
	if hooks.responses != 1 {
		t.Errorf("OnResponse calls = %d, want 1", hooks.responses)
	}
	if hooks.lastStatus != http.StatusOK {
		t.Errorf("OnResponse status = %d, want %d", hooks.lastStatus, http.StatusOK)
	}
	if hooks.lastRequestID == "" {
		t.Error("OnRequest should receive a non-empty request id")
	}
}

type recordingHooks struct {
	observability.NoopHTTPHooks

	mu            sync.Mutex
	requests      int
	responses     int
	lastStatus    int
	lastRequestID string
}

func (h *recordingHooks) OnRequest(_ context.Context, requestID, _, _, _ string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
	h.lastRequestID = requestID
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses++
	h.lastStatus = status
}
