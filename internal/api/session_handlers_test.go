package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"hockey-playdate/clubhouse/internal/common"
	"hockey-playdate/clubhouse/internal/middleware"
	"hockey-playdate/clubhouse/internal/models/dtos/responses"
)

func newUnreachableSessionService() *common.SessionService {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		ReadTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return common.NewSessionService(client)
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	handler := Logout(newUnreachableSessionService())

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "sess-1"})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var cleared bool
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.Value == "" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Expected session cookie to be cleared")
	}

	var response responses.APIResponse[responses.OperationResponse]
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "success" {
		t.Errorf("Expected status success, got %s", response.Status)
	}
}

func TestLogoutHandler_NoCookie(t *testing.T) {
	handler := Logout(newUnreachableSessionService())

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected logout without a cookie to succeed, got %d", rr.Code)
	}
}
