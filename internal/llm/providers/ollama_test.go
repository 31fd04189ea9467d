package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitaforge/pkg/utils"
)

func TestOllamaComplete(t *testing.T) {
	var gotReq generateRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %q", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		json.NewEncoder(w).Encode(generateResponse{Response: `{"personalInfo":{}}`, Done: true})
	}))
	defer srv.Close()

	p := NewOllamaProvider("ollama-cloud", "Ollama (Cloud)", srv.URL, "secret-token", []string{"gpt-oss:120b"})

	text, err := p.Complete(context.Background(), "gpt-oss:120b", "parse this resume", ShapeJSONObject)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != `{"personalInfo":{}}` {
		t.Errorf("unexpected response text %q", text)
	}

	if gotReq.Model != "gpt-oss:120b" {
		t.Errorf("model = %q, want gpt-oss:120b", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("stream must be disabled")
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("authorization = %q", gotAuth)
	}
}

func TestOllamaCompleteNoAuthHeaderForLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("local provider must not send auth, got %q", auth)
		}
		json.NewEncoder(w).Encode(generateResponse{Response: "ok", Done: true})
	}))
	defer srv.Close()

	p := NewOllamaProvider("ollama-local", "Ollama (Local)", srv.URL, "", []string{"llama3.1"})
	if _, err := p.Complete(context.Background(), "llama3.1", "hi", ShapeText); err != nil {
		t.Fatalf("Complete: %v", err)
	}
}

func TestOllamaCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider("ollama-local", "Ollama (Local)", srv.URL, "", []string{"llama3.1"})

	_, err := p.Complete(context.Background(), "missing-model", "hi", ShapeText)
	if err == nil {
		t.Fatal("expected error for upstream 404")
	}
	if !utils.IsKind(err, utils.KindTransport) {
		t.Errorf("error kind = %v, want transport", err)
	}
	if utils.IsRetryable(err) {
		t.Error("404 must not be classified retryable")
	}
}

func TestOllamaCompleteRetryableStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "loading model", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewOllamaProvider("ollama-local", "Ollama (Local)", srv.URL, "", []string{"llama3.1"})

	_, err := p.Complete(context.Background(), "llama3.1", "hi", ShapeText)
	if err == nil {
		t.Fatal("expected error for upstream 503")
	}
	if !utils.IsRetryable(err) {
		t.Error("503 must be classified retryable")
	}
}

func TestOllamaCompleteEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Response: "", Done: true})
	}))
	defer srv.Close()

	p := NewOllamaProvider("ollama-local", "Ollama (Local)", srv.URL, "", []string{"llama3.1"})

	if _, err := p.Complete(context.Background(), "llama3.1", "hi", ShapeText); err == nil {
		t.Fatal("expected error for empty response body")
	}
}

func TestOllamaIsRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewOllamaProvider("ollama-local", "Ollama (Local)", srv.URL, "", []string{"llama3.1"})
	if !p.IsRunning(context.Background()) {
		t.Error("IsRunning = false against a healthy server")
	}

	srv.Close()
	if p.IsRunning(context.Background()) {
		t.Error("IsRunning = true against a closed server")
	}
}
