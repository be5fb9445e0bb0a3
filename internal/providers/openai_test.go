package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func openAIServer(t *testing.T, handler http.HandlerFunc) (*OpenAI, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	return &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4.1-mini",
		baseURL: server.URL,
		client:  server.Client(),
	}, server.Close
}

func TestOpenAI_Review(t *testing.T) {
	o, done := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing or wrong Authorization header")
		}
		var body openaiRequest
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" {
			t.Errorf("messages = %+v", body.Messages)
		}
		json.NewEncoder(w).Encode(openaiResponse{
			Choices: []openaiChoice{{Message: openaiMessage{Role: "assistant", Content: "## Review"}}},
			Usage:   openaiUsage{TotalTokens: 42},
		})
	})
	defer done()

	resp, err := o.Review(context.Background(), ReviewRequest{SystemPrompt: "sys", UserPrompt: "code"})
	if err != nil {
		t.Fatalf("Review error: %v", err)
	}
	if resp.Content != "## Review" || resp.TokensUsed != 42 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestOpenAI_NoSystemPrompt(t *testing.T) {
	o, done := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body openaiRequest
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) != 1 || body.Messages[0].Role != "user" {
			t.Errorf("messages = %+v, want a single user message", body.Messages)
		}
		json.NewEncoder(w).Encode(openaiResponse{
			Choices: []openaiChoice{{Message: openaiMessage{Content: "ok"}}},
		})
	})
	defer done()

	if _, err := o.Review(context.Background(), ReviewRequest{UserPrompt: "code"}); err != nil {
		t.Fatalf("Review error: %v", err)
	}
}

func TestOpenAI_RateLimit(t *testing.T) {
	fastBackoff(t)
	attempts := 0
	o, done := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(429)
	})
	defer done()

	_, err := o.Review(context.Background(), ReviewRequest{UserPrompt: "test"})
	if !IsRateLimited(err) {
		t.Fatalf("Expected rate limit error, got: %v", err)
	}
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4 (1 + 3 retries)", attempts)
	}
}

func TestOpenAI_ServerError(t *testing.T) {
	fastBackoff(t)
	attempts := 0
	o, done := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 1 {
			w.WriteHeader(503)
			w.Write([]byte(`{"error":"service unavailable"}`))
			return
		}
		json.NewEncoder(w).Encode(openaiResponse{
			Choices: []openaiChoice{{Message: openaiMessage{Role: "assistant", Content: "ok"}}},
		})
	})
	defer done()

	resp, err := o.Review(context.Background(), ReviewRequest{UserPrompt: "test"})
	if err != nil {
		t.Fatalf("Review should succeed after retry: %v", err)
	}
	if resp.Content != "ok" || attempts != 2 {
		t.Errorf("Content = %q, attempts = %d", resp.Content, attempts)
	}
}

func TestOpenAI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		auth    bool
	}{
		{"auth", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(401)
			w.Write([]byte(`{"error":"unauthorized"}`))
		}, true},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(400)
			w.Write([]byte(`{"error":"bad"}`))
		}, false},
		{"no choices", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(openaiResponse{})
		}, false},
		{"empty content", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(openaiResponse{Choices: []openaiChoice{{}}})
		}, false},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{`))
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, done := openAIServer(t, tt.handler)
			defer done()
			_, err := o.Review(context.Background(), ReviewRequest{UserPrompt: "test"})
			if err == nil {
				t.Fatal("expected error")
			}
			if IsAuthError(err) != tt.auth {
				t.Errorf("IsAuthError(%v) = %v, want %v", err, IsAuthError(err), tt.auth)
			}
		})
	}
}
