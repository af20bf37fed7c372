package adminapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asaskevich/EventBus"
	jsoniter "github.com/json-iterator/go"
	"github.com/robfig/cron/v3"

	"github.com/beautyfind/beautyfind/config"
	"github.com/beautyfind/beautyfind/internal/catalog"
	"github.com/beautyfind/beautyfind/internal/flakiness"
	"github.com/beautyfind/beautyfind/internal/kvstore"
	"github.com/beautyfind/beautyfind/internal/moderation"
	"github.com/beautyfind/beautyfind/internal/session"
	"github.com/beautyfind/beautyfind/internal/webserver"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// testApp is an AppContext over in-memory fakes, without a real Init.
type testApp struct {
	cfg       *config.AppConfig
	store     *kvstore.MemoryStore
	engine    *catalog.Engine
	submitter *catalog.Submitter
	sessions  *session.Manager
	modqueue  *moderation.Service
}

func (a *testApp) Config() *config.AppConfig       { return a.cfg }
func (a *testApp) Store() kvstore.Store            { return a.store }
func (a *testApp) Catalog() *catalog.Engine        { return a.engine }
func (a *testApp) Submitter() *catalog.Submitter   { return a.submitter }
func (a *testApp) Sessions() *session.Manager      { return a.sessions }
func (a *testApp) Moderation() *moderation.Service { return a.modqueue }
func (a *testApp) Scheduler() *cron.Cron           { return nil }
func (a *testApp) Bus() EventBus.Bus               { return nil }
func (a *testApp) Release()                        {}

func setup(t *testing.T) {
	t.Helper()
	engine, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	store := kvstore.NewMemoryStore()
	policy := flakiness.Disabled()
	modqueue := moderation.NewService(nil)
	a := &testApp{
		cfg:       config.DefaultAppConfig,
		store:     store,
		engine:    engine,
		submitter: catalog.NewSubmitter(policy, modqueue),
		sessions:  session.NewManager(store, policy, nil),
		modqueue:  modqueue,
	}
	webserver.Init(a)
	RegisterRoutes()
}

func do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestListProducts(t *testing.T) {
	setup(t)

	rec := do(t, http.MethodGet, "/api/products?price=0-30&sort=price-low", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	rows := body["data"].([]interface{})
	if len(rows) != 5 {
		t.Errorf("got %d products, want 5", len(rows))
	}
	// Total reflects the filtered set, not the whole catalog.
	if body["total"].(float64) != 5 {
		t.Errorf("total = %v, want 5", body["total"])
	}
	first := rows[0].(map[string]interface{})
	if first["price"].(float64) != 7 {
		t.Errorf("first price = %v, want 7", first["price"])
	}
}

func TestGetProductNotFound(t *testing.T) {
	setup(t)
	if rec := do(t, http.MethodGet, "/api/products/999", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestSignInValidationStatus(t *testing.T) {
	setup(t)

	rec := do(t, http.MethodPost, "/api/auth/signin", `{"email":"bad","password":"secret1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode(t, rec)
	errObj := body["error"].(map[string]interface{})
	if errObj["code"] != "VALIDATION_ERROR" {
		t.Errorf("error code = %v", errObj["code"])
	}
}

func TestSignInAndSessionRoundTrip(t *testing.T) {
	setup(t)

	rec := do(t, http.MethodPost, "/api/auth/signin", `{"email":"jane@example.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("signin status = %d: %s", rec.Code, rec.Body.String())
	}

	body := decode(t, do(t, http.MethodGet, "/api/auth/session", ""))
	data := body["data"].(map[string]interface{})
	if data["authenticated"] != true {
		t.Error("session not authenticated after signin")
	}

	if rec := do(t, http.MethodPost, "/api/auth/signout", ""); rec.Code != http.StatusOK {
		t.Fatalf("signout status = %d", rec.Code)
	}
	body = decode(t, do(t, http.MethodGet, "/api/auth/session", ""))
	if body["data"].(map[string]interface{})["authenticated"] != false {
		t.Error("session still authenticated after signout")
	}
}

func TestProfileUpdateRequiresSession(t *testing.T) {
	setup(t)
	rec := do(t, http.MethodPut, "/api/auth/profile", `{"name":"Jane"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSubmitUnsupportedRetailer(t *testing.T) {
	setup(t)
	rec := do(t, http.MethodPost, "/api/products/submit", `{"url":"https://walmart.com/item/1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	errObj := decode(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "UNSUPPORTED" {
		t.Errorf("error code = %v", errObj["code"])
	}
}

func TestModerationFlow(t *testing.T) {
	setup(t)

	body := decode(t, do(t, http.MethodGet, "/api/admin/pending", ""))
	pending := body["data"].([]interface{})
	if len(pending) != 2 {
		t.Fatalf("pending = %d entries, want 2", len(pending))
	}

	if rec := do(t, http.MethodPost, "/api/admin/pending/pending_1/approve", ""); rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d", rec.Code)
	}
	if rec := do(t, http.MethodPost, "/api/admin/pending/pending_1/approve", ""); rec.Code != http.StatusNotFound {
		t.Errorf("second approve status = %d, want 404", rec.Code)
	}

	stats := decode(t, do(t, http.MethodGet, "/api/admin/stats", ""))["data"].(map[string]interface{})
	if stats["pendingCount"].(float64) != 1 {
		t.Errorf("pendingCount = %v, want 1", stats["pendingCount"])
	}
	if stats["totalProducts"].(float64) != 12 {
		t.Errorf("totalProducts = %v, want 12", stats["totalProducts"])
	}
}
