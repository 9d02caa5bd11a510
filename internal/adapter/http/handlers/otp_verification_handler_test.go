package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"order_confirmation/internal/adapter/http/handlers/mocks"
	"order_confirmation/internal/domain/entities"
	"order_confirmation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOTPVerificationHandler_VerifyOTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIOTPVerificationUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOTPVerificationUseCase(ctrl)
		h := NewOTPVerificationHandler(uc)
		r := gin.New()
		r.POST("/v1/orders/verify", h.VerifyOTP)
		return r, uc
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	plainBody := func(t *testing.T, w *httptest.ResponseRecorder) string {
		t.Helper()
		var s string
		if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
			t.Fatalf("expected JSON string body, got %s", w.Body.String())
		}
		return s
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := build(t)
		w := post(r, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		body   string
		cors   bool
	}{
		{name: "missing order id", err: usecase.ErrOrderIDRequired, status: http.StatusBadRequest, body: "order_id is required in the request."},
		{name: "missing otp", err: usecase.ErrOTPRequired, status: http.StatusBadRequest, body: "otp is required in the request."},
		{name: "not found", err: usecase.ErrOrderNotFound, status: http.StatusNotFound, body: "Order with the provided order_id not found."},
		{name: "expired", err: usecase.ErrOTPExpired, status: http.StatusBadRequest, body: "OTP has expired."},
		{name: "incorrect", err: usecase.ErrIncorrectOTP, status: http.StatusBadRequest, body: "Incorrect OTP.", cors: true},
		{name: "verified", err: nil, status: http.StatusOK, body: "OTP verified successfully!", cors: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := build(t)
			uc.EXPECT().VerifyOTP(gomock.Any(), "ord-1", "123456").Return(entities.ConfirmedOrder{}, tc.err)

			w := post(r, `{"order_id":"ord-1","otp":"123456"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if got := plainBody(t, w); got != tc.body {
				t.Fatalf("expected %q, got %q", tc.body, got)
			}
			if tc.cors {
				assertCORSHeaders(t, w)
			} else if w.Header().Get("Access-Control-Allow-Origin") != "" {
				t.Fatalf("unexpected CORS headers on %s", tc.name)
			}
		})
	}

	t.Run("missing fields are passed through to the use case", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().VerifyOTP(gomock.Any(), "", "123456").Return(entities.ConfirmedOrder{}, usecase.ErrOrderIDRequired)

		w := post(r, `{"otp":"123456"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := plainBody(t, w); got != "order_id is required in the request." {
			t.Fatalf("unexpected body %q", got)
		}
	})

	t.Run("store failure is a generic error", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().VerifyOTP(gomock.Any(), "ord-1", "123456").Return(entities.ConfirmedOrder{}, errors.New("dynamodb"))

		w := post(r, `{"order_id":"ord-1","otp":"123456"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapVerificationResult(t *testing.T) {
	if _, ok := mapVerificationResult(errors.New("x")); ok {
		t.Fatalf("expected unknown errors to fall outside the taxonomy")
	}
	out, ok := mapVerificationResult(nil)
	if !ok || out.status != http.StatusOK || !out.cors {
		t.Fatalf("unexpected success outcome: %+v", out)
	}
	out, ok = mapVerificationResult(usecase.ErrOTPExpired)
	if !ok || out.status != http.StatusBadRequest || out.cors {
		t.Fatalf("unexpected expired outcome: %+v", out)
	}
}
