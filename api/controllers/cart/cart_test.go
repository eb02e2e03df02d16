package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	cartdto "github.com/angelmondragon/panier-backend/api/controllers/cart/dto"
	"github.com/angelmondragon/panier-backend/api/middleware"
	cartsvc "github.com/angelmondragon/panier-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
	"github.com/angelmondragon/panier-backend/pkg/types"
)

const testSession = "session-1"

type cartEnvelope struct {
	Data   cartdto.Cart  `json:"data"`
	Notice *types.Notice `json:"notice"`
}

func newTestService(t *testing.T) cartsvc.Service {
	t.Helper()
	svc, err := cartsvc.NewService(cartsvc.NewRegistry(cartsvc.RegistryOptions{}), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithSessionID(ctx, testSession)
	return req.WithContext(ctx)
}

func decodeCart(t *testing.T, resp *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var envelope cartEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestCartFetchSeededCart(t *testing.T) {
	handler := CartFetch(newTestService(t), "€", nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodGet, "/api/v1/cart", "", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	envelope := decodeCart(t, resp)
	if len(envelope.Data.Items) != 4 {
		t.Fatalf("expected 4 items got %d", len(envelope.Data.Items))
	}
	totals := envelope.Data.Totals
	if totals.Subtotal != "1509.95" || totals.Tax != "226.4925" || totals.Total != "1736.4425" {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if totals.SubtotalDisplay != "1509.95 €" || totals.TotalDisplay != "1736.44 €" {
		t.Fatalf("unexpected display totals %+v", totals)
	}
	if totals.TaxRate != "0.15" {
		t.Fatalf("unexpected tax rate %q", totals.TaxRate)
	}
	if envelope.Data.Items[1].LineSubtotal != "59.98" {
		t.Fatalf("unexpected line subtotal %q", envelope.Data.Items[1].LineSubtotal)
	}
}

func TestCartFetchRequiresSession(t *testing.T) {
	handler := CartFetch(newTestService(t), "€", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestCartSetQuantityAcceptsStringsAndNumbers(t *testing.T) {
	svc := newTestService(t)
	handler := CartSetQuantity(svc, "€", nil)

	tests := []struct {
		body string
		want int
	}{
		{body: `{"quantity":5}`, want: 5},
		{body: `{"quantity":"3"}`, want: 3},
		{body: `{"quantity":"abc"}`, want: 1},
		{body: `{"quantity":-4}`, want: 1},
		{body: `{"quantity":2.5}`, want: 1},
		{body: `{"quantity":""}`, want: 1},
	}
	for _, tt := range tests {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, newRequest(http.MethodPut, "/api/v1/cart/items/2/quantity", tt.body, map[string]string{"itemId": "2"}))
		if resp.Code != http.StatusOK {
			t.Fatalf("body %s: expected 200 got %d", tt.body, resp.Code)
		}
		envelope := decodeCart(t, resp)
		if got := envelope.Data.Items[1].Quantity; got != tt.want {
			t.Fatalf("body %s: expected quantity %d got %d", tt.body, tt.want, got)
		}
	}
}

func TestCartQuantityIsCappedAcrossIncrements(t *testing.T) {
	svc := newTestService(t)
	params := map[string]string{"itemId": "2"}

	resp := httptest.NewRecorder()
	CartSetQuantity(svc, "€", nil).ServeHTTP(resp, newRequest(http.MethodPut, "/", `{"quantity":"9223372036854775807"}`, params))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	CartIncrement(svc, "€", nil).ServeHTTP(resp, newRequest(http.MethodPost, "/", "", params))
	envelope := decodeCart(t, resp)
	if got := envelope.Data.Items[1].Quantity; got != cartsvc.MaxQuantity {
		t.Fatalf("expected quantity capped at %d got %d", cartsvc.MaxQuantity, got)
	}
	if strings.HasPrefix(envelope.Data.Totals.Total, "-") {
		t.Fatalf("total must stay positive, got %s", envelope.Data.Totals.Total)
	}
}

func TestCartSetQuantityRequiresField(t *testing.T) {
	handler := CartSetQuantity(newTestService(t), "€", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodPut, "/", `{}`, map[string]string{"itemId": "2"}))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartIncrementUpdatesTotals(t *testing.T) {
	svc := newTestService(t)
	handler := CartIncrement(svc, "€", nil)

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, newRequest(http.MethodPost, "/", "", map[string]string{"itemId": "2"}))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", resp.Code)
		}
		if i == 1 {
			envelope := decodeCart(t, resp)
			if envelope.Data.Totals.Subtotal != "1569.93" {
				t.Fatalf("expected subtotal 1569.93 got %s", envelope.Data.Totals.Subtotal)
			}
		}
	}
}

func TestCartUnknownItemIsNotFound(t *testing.T) {
	handler := CartDecrement(newTestService(t), "€", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodPost, "/", "", map[string]string{"itemId": "99"}))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Message != "item not found in cart" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestCartBadItemIDIsValidationError(t *testing.T) {
	handler := CartIncrement(newTestService(t), "€", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodPost, "/", "", map[string]string{"itemId": "x"}))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	svc := newTestService(t)

	resp := httptest.NewRecorder()
	CartRemoveItem(svc, "€", nil).ServeHTTP(resp, newRequest(http.MethodDelete, "/", "", map[string]string{"itemId": "1"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	envelope := decodeCart(t, resp)
	if envelope.Data.Totals.Subtotal != "209.96" {
		t.Fatalf("expected subtotal 209.96 got %s", envelope.Data.Totals.Subtotal)
	}
	if envelope.Notice == nil || envelope.Notice.Level != "success" {
		t.Fatalf("expected success notice got %+v", envelope.Notice)
	}

	resp = httptest.NewRecorder()
	CartClear(svc, "€", nil).ServeHTTP(resp, newRequest(http.MethodDelete, "/", "", nil))
	envelope = decodeCart(t, resp)
	if !envelope.Data.Empty || envelope.Data.Totals.Total != "0" {
		t.Fatalf("expected empty cart got %+v", envelope.Data)
	}

	resp = httptest.NewRecorder()
	CartClear(svc, "€", nil).ServeHTTP(resp, newRequest(http.MethodDelete, "/", "", nil))
	envelope = decodeCart(t, resp)
	if envelope.Notice == nil || envelope.Notice.Level != "info" {
		t.Fatalf("expected info notice on repeated clear got %+v", envelope.Notice)
	}
}

func TestCartToggleLikedNotice(t *testing.T) {
	handler := CartToggleLiked(newTestService(t), "€", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodPost, "/", "", map[string]string{"itemId": "3"}))
	envelope := decodeCart(t, resp)
	if !envelope.Data.Items[2].Liked {
		t.Fatalf("expected item 3 to be liked")
	}
	if envelope.Notice == nil || !strings.Contains(envelope.Notice.Message, "favourites") {
		t.Fatalf("unexpected notice %+v", envelope.Notice)
	}
}

func TestCartCheckout(t *testing.T) {
	svc := newTestService(t)

	resp := httptest.NewRecorder()
	CartCheckout(svc, "€", nil).ServeHTTP(resp, newRequest(http.MethodPost, "/", "", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data   cartdto.CheckoutSummary `json:"data"`
		Notice *types.Notice           `json:"notice"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.TotalDisplay != "1736.44 €" || envelope.Data.ItemCount != 4 || envelope.Data.Units != 5 {
		t.Fatalf("unexpected summary %+v", envelope.Data)
	}

	CartClear(svc, "€", nil).ServeHTTP(httptest.NewRecorder(), newRequest(http.MethodDelete, "/", "", nil))

	resp = httptest.NewRecorder()
	CartCheckout(svc, "€", nil).ServeHTTP(resp, newRequest(http.MethodPost, "/", "", nil))
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

type failingService struct {
	cartsvc.Service
}

func (failingService) Cart(ctx context.Context, sessionID string) (*cartsvc.View, error) {
	return nil, pkgerrors.New(pkgerrors.CodeDependency, "unavailable")
}

func TestCartFetchPropagatesServiceErrors(t *testing.T) {
	resp := httptest.NewRecorder()
	CartFetch(failingService{}, "€", nil).ServeHTTP(resp, newRequest(http.MethodGet, "/", "", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestQuantityInputUnmarshal(t *testing.T) {
	tests := map[string]string{
		`{"quantity":7}`:     "7",
		`{"quantity":" 8 "}`: " 8 ",
		`{"quantity":"1e3"}`: "1e3",
		`{"quantity":-0.5}`:  "-0.5",
	}
	for body, want := range tests {
		var payload cartdto.SetQuantityRequest
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if payload.Quantity == nil || string(*payload.Quantity) != want {
			t.Fatalf("%s: expected %q", body, want)
		}
	}
}
