package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/store-api/internal/http/ban"
	handler "github.com/rogerio-castellano/store-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/store-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/store-api/internal/http/router"
	"github.com/rogerio-castellano/store-api/internal/redissvc"
)

func TestAuthEndpoints_RateLimited(t *testing.T) {
	t.Cleanup(rl.CleanupAllVisitors)
	rl.CleanupAllVisitors()
	r := router.NewRouter()

	// All httptest requests share one remote address; the burst of 3 is
	// spent by the first three calls.
	var last *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		payload := handler.CredentialsRequest{Username: "admin", Password: "wrong"}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		last = httptest.NewRecorder()
		r.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after exhausting the burst, got %d", last.Code)
	}

	var resp handler.MessageResponse
	if err := json.NewDecoder(last.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "too many requests" {
		t.Errorf("expected limiter message, got %q", resp.Message)
	}
}

func TestLoginHandler_BannedAfterRepeatedFailures(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ban.SetRedisService(redissvc.NewRedisService(client, context.Background()))
	t.Cleanup(func() {
		// Hand the ban module a nil client so later tests run unthrottled.
		ban.SetRedisService(redissvc.NewRedisService(nil, context.Background()))
		client.Close()
		resetUsers()
	})

	r := router.NewRouter()

	for i := 1; i <= ban.StrikeLimit; i++ {
		w := login(r, "admin", "wrong")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i, w.Code)
		}
	}

	// Even the correct password is rejected while the ban key is live.
	w := login(r, "admin", "secret")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for banned username|ip, got %d", w.Code)
	}

	var resp handler.MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "too many failed login attempts" {
		t.Errorf("expected ban message, got %q", resp.Message)
	}

	// Once the ban lapses the same credentials work again.
	mr.FastForward(ban.BanDuration)
	w = login(r, "admin", "secret")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 after ban expiry, got %d", w.Code)
	}
}
