package routes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/23CSE311-SeeFood/seeFood-Backend/configs"
	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"github.com/23CSE311-SeeFood/seeFood-Backend/payments"
	"github.com/23CSE311-SeeFood/seeFood-Backend/repository"
	"github.com/23CSE311-SeeFood/seeFood-Backend/utils"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"github.com/gin-gonic/gin"
)

type stubGateway struct{}

func (stubGateway) CreateOrder(ctx context.Context, in validators.OrderInput) (entity.PaymentOrder, error) {
	return entity.PaymentOrder{"id": "order_test", "amount": in.Amount, "currency": in.Currency}, nil
}

const (
	keySecret  = "key-secret"
	hookSecret = "hook-secret"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := configs.ConnectDB(&configs.Config{
		DBDriver: configs.DriverSQLite,
		DBSource: "file:" + name + "?mode=memory&cache=shared",
		LogLevel: "error",
	}, log)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = configs.CloseDB(db) })
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return NewRouter(Deps{
		Store:       repository.NewStore(db),
		Tokens:      utils.NewTokenIssuer("test-secret", 0),
		Payments:    payments.Config{KeyID: "rzp_test", KeySecret: keySecret, WebhookSecret: hookSecret},
		Gateway:     stubGateway{},
		Log:         log,
		CORSOrigins: []string{"*"},
	})
}

func do(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func expect(t *testing.T, w *httptest.ResponseRecorder, status int, errMsg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	if errMsg == "" {
		return
	}
	body := decode[map[string]any](t, w)
	if body["error"] != errMsg {
		t.Errorf("expected error %q, got %v", errMsg, body["error"])
	}
}

func TestHealthAndRoot(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("unexpected health response %d %q", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/", "")
	body := decode[map[string]string](t, w)
	if w.Code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("unexpected root response %d %v", w.Code, body)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}

	expect(t, do(r, http.MethodGet, "/nowhere", ""), http.StatusNotFound, "Not Found")
}

func TestCanteenLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/canteens", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}

	expect(t, do(r, http.MethodPost, "/canteens", `{"name":"   "}`), http.StatusBadRequest, "name is required")
	expect(t, do(r, http.MethodPost, "/canteens", `{"name":"Main","ratings":"good"}`), http.StatusBadRequest, "ratings must be a number")
	expect(t, do(r, http.MethodPost, "/canteens", `{"name":`), http.StatusBadRequest, "invalid JSON body")

	w = do(r, http.MethodPost, "/canteens", `{"name":" Main Block ","ratings":4.5}`)
	expect(t, w, http.StatusCreated, "")
	created := decode[entity.Canteen](t, w)
	if created.Name != "Main Block" || created.Ratings == nil || *created.Ratings != 4.5 {
		t.Errorf("unexpected canteen %+v", created)
	}

	expect(t, do(r, http.MethodDelete, "/canteens/abc", ""), http.StatusBadRequest, "id must be an integer")
	expect(t, do(r, http.MethodDelete, "/canteens/999", ""), http.StatusNotFound, "Canteen not found")

	w = do(r, http.MethodDelete, "/canteens/1", "")
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Errorf("expected empty 204, got %d %q", w.Code, w.Body.String())
	}
	expect(t, do(r, http.MethodGet, "/canteens/1/items", ""), http.StatusNotFound, "Canteen not found")
}

func TestItemLifecycle(t *testing.T) {
	r := newTestRouter(t)

	expect(t, do(r, http.MethodPost, "/canteens/1/items", `{"name":"Tea","price":10,"isVeg":true}`), http.StatusNotFound, "Canteen not found")

	expect(t, do(r, http.MethodPost, "/canteens", `{"name":"Main"}`), http.StatusCreated, "")
	expect(t, do(r, http.MethodPost, "/canteens", `{"name":"Annex"}`), http.StatusCreated, "")

	w := do(r, http.MethodPost, "/canteens/1/items", `{"name":"Tea","price":"10","isVeg":true}`)
	expect(t, w, http.StatusCreated, "")
	item := decode[map[string]any](t, w)
	if item["rating"] != nil || item["price"] != 10.0 || item["canteenId"] != 1.0 {
		t.Errorf("unexpected item %v", item)
	}

	expect(t, do(r, http.MethodPost, "/canteens/1/items", `{"name":"Tea","price":10,"isVeg":"yes"}`), http.StatusBadRequest, "isVeg must be boolean")
	expect(t, do(r, http.MethodPost, "/canteens/1/items", `{"name":"Tea","isVeg":true}`), http.StatusBadRequest, "price is required")
	expect(t, do(r, http.MethodPost, "/canteens/x/items", `{}`), http.StatusBadRequest, "canteenId must be an integer")

	// the canteen lookup comes before the item id is parsed
	expect(t, do(r, http.MethodPut, "/canteens/999/items/abc", `{"name":"x"}`), http.StatusNotFound, "Canteen not found")
	expect(t, do(r, http.MethodDelete, "/canteens/999/items/abc", ""), http.StatusNotFound, "Canteen not found")
	expect(t, do(r, http.MethodPut, "/canteens/1/items/abc", `{"name":"x"}`), http.StatusBadRequest, "id must be an integer")
	expect(t, do(r, http.MethodDelete, "/canteens/1/items/abc", ""), http.StatusBadRequest, "id must be an integer")

	expect(t, do(r, http.MethodPut, "/canteens/1/items/1", `{}`), http.StatusBadRequest, "no fields to update")
	expect(t, do(r, http.MethodPut, "/canteens/1/items/1", ""), http.StatusBadRequest, "no fields to update")
	expect(t, do(r, http.MethodPut, "/canteens/2/items/1", `{"name":"Stolen"}`), http.StatusNotFound, "Item not found")
	expect(t, do(r, http.MethodPut, "/canteens/1/items/42", `{"name":"Ghost"}`), http.StatusNotFound, "Item not found")

	w = do(r, http.MethodPut, "/canteens/1/items/1", `{"price":12.5,"rating":4}`)
	expect(t, w, http.StatusOK, "")
	item = decode[map[string]any](t, w)
	if item["name"] != "Tea" || item["price"] != 12.5 || item["rating"] != 4.0 || item["isVeg"] != true {
		t.Errorf("unexpected updated item %v", item)
	}

	w = do(r, http.MethodPut, "/canteens/1/items/1", `{"rating":null}`)
	expect(t, w, http.StatusOK, "")
	if item = decode[map[string]any](t, w); item["rating"] != nil {
		t.Errorf("expected rating cleared, got %v", item["rating"])
	}

	w = do(r, http.MethodGet, "/canteens/2/items", "")
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("annex should have no items, got %s", w.Body.String())
	}

	expect(t, do(r, http.MethodDelete, "/canteens/2/items/1", ""), http.StatusNotFound, "Item not found")
	w = do(r, http.MethodDelete, "/canteens/1/items/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	expect(t, do(r, http.MethodDelete, "/canteens/1/items/1", ""), http.StatusNotFound, "Item not found")
}

func TestDeletingCanteenRemovesItems(t *testing.T) {
	r := newTestRouter(t)

	expect(t, do(r, http.MethodPost, "/canteens", `{"name":"Main"}`), http.StatusCreated, "")
	expect(t, do(r, http.MethodPost, "/canteens/1/items", `{"name":"Tea","price":10,"isVeg":true}`), http.StatusCreated, "")
	expect(t, do(r, http.MethodDelete, "/canteens/1", ""), http.StatusNoContent, "")

	// the old items must not reappear under a recreated canteen
	w := do(r, http.MethodPost, "/canteens", `{"name":"Main"}`)
	expect(t, w, http.StatusCreated, "")
	again := decode[entity.Canteen](t, w)
	w = do(r, http.MethodGet, "/canteens/"+strconv.FormatInt(again.ID, 10)+"/items", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected no items, got %d %s", w.Code, w.Body.String())
	}
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	expect(t, do(r, http.MethodPost, "/auth/register", `{"email":"a@b.c"}`), http.StatusBadRequest, "name, email, number, password required")

	w := do(r, http.MethodPost, "/auth/register", `{"name":"Asha","email":"Asha@Campus.edu","number":98765,"password":"pa55word"}`)
	expect(t, w, http.StatusCreated, "")
	reg := decode[map[string]any](t, w)
	student, _ := reg["student"].(map[string]any)
	if reg["token"] == "" || student["email"] != "asha@campus.edu" || student["number"] != "98765" {
		t.Errorf("unexpected register response %v", reg)
	}
	if _, leaked := student["password"]; leaked {
		t.Error("password must never be serialized")
	}

	expect(t, do(r, http.MethodPost, "/auth/register", `{"name":"B","email":"asha@campus.edu","number":"1","password":"x"}`), http.StatusConflict, "email already registered")

	unknown := do(r, http.MethodPost, "/auth/login", `{"email":"nobody@campus.edu","password":"pa55word"}`)
	wrong := do(r, http.MethodPost, "/auth/login", `{"email":"asha@campus.edu","password":"nope"}`)
	expect(t, unknown, http.StatusUnauthorized, "invalid credentials")
	expect(t, wrong, http.StatusUnauthorized, "invalid credentials")
	if unknown.Body.String() != wrong.Body.String() {
		t.Errorf("login failures differ: %s vs %s", unknown.Body.String(), wrong.Body.String())
	}

	w = do(r, http.MethodPost, "/auth/login", `{"email":"ASHA@campus.edu","password":"pa55word"}`)
	expect(t, w, http.StatusOK, "")
	token, _ := decode[map[string]any](t, w)["token"].(string)

	expect(t, do(r, http.MethodGet, "/auth/me", ""), http.StatusUnauthorized, "missing or invalid token")
	expect(t, do(r, http.MethodGet, "/auth/me", "", "Authorization", "Bearer junk"), http.StatusUnauthorized, "invalid token")

	w = do(r, http.MethodGet, "/auth/me", "", "Authorization", "Bearer "+token)
	expect(t, w, http.StatusOK, "")
	if me := decode[map[string]any](t, w); me["name"] != "Asha" {
		t.Errorf("unexpected profile %v", me)
	}
}

func TestPayments(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/payments/create-order", `{"amount":"49.99","receipt":"rcpt_1"}`)
	expect(t, w, http.StatusCreated, "")
	order := decode[map[string]any](t, w)
	if order["amount"] != 50.0 || order["currency"] != "INR" {
		t.Errorf("unexpected order %v", order)
	}
	expect(t, do(r, http.MethodPost, "/payments/create-order", `{"amount":"lots"}`), http.StatusBadRequest, "amount is required")

	sig := payments.Sign(keySecret, payments.PaymentPayload("order_1", "pay_1"))
	good := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"` + sig + `"}`
	w = do(r, http.MethodPost, "/payments/verify", good)
	if w.Code != http.StatusOK || decode[map[string]string](t, w)["status"] != "verified" {
		t.Errorf("expected verified, got %d %s", w.Code, w.Body.String())
	}
	tampered := strings.Replace(good, "pay_1", "pay_2", 1)
	expect(t, do(r, http.MethodPost, "/payments/verify", tampered), http.StatusBadRequest, "Invalid signature")
	expect(t, do(r, http.MethodPost, "/payments/verify", `{"razorpay_order_id":"order_1"}`), http.StatusBadRequest, "Missing payment verification fields")

	body := `{"event":"payment.captured",  "payload":{}}`
	hookSig := payments.Sign(hookSecret, []byte(body))
	w = do(r, http.MethodPost, "/payments/webhook", body, "X-Razorpay-Signature", hookSig)
	if w.Code != http.StatusOK || decode[map[string]string](t, w)["status"] != "ok" {
		t.Errorf("expected webhook ok, got %d %s", w.Code, w.Body.String())
	}
	// the digest covers the exact bytes, whitespace included
	compact := `{"event":"payment.captured","payload":{}}`
	expect(t, do(r, http.MethodPost, "/payments/webhook", compact, "X-Razorpay-Signature", hookSig), http.StatusBadRequest, "Invalid webhook signature")
	expect(t, do(r, http.MethodPost, "/payments/webhook", body), http.StatusBadRequest, "Missing signature")
}
