package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/travelhub/travel-client/internal/client"
	"github.com/travelhub/travel-client/internal/response"
	"github.com/travelhub/travel-client/internal/session"
)

type fakeServer struct {
	lastQuery map[string]string
	lastBody  map[string]any
}

func newFakeServer(t *testing.T) (*API, *session.Session, *fakeServer) {
	t.Helper()

	fake := &fakeServer{}
	r := chi.NewRouter()

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				fake.lastQuery = map[string]string{}
				for k := range req.URL.Query() {
					fake.lastQuery[k] = req.URL.Query().Get(k)
				}
				fake.lastBody = nil
				if req.Body != nil {
					_ = json.NewDecoder(req.Body).Decode(&fake.lastBody)
				}
				next.ServeHTTP(w, req)
			})
		})

		r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
			if fake.lastBody["password"] != "secret" {
				response.RespondWithEnvelope(w, 10004, "bad credentials", nil)
				return
			}
			response.RespondWithEnvelope(w, 0, "success", map[string]any{
				"token":     "admin-token",
				"expiresIn": 86400,
				"admin":     map[string]any{"id": 1, "username": fake.lastBody["username"], "realName": "Root"},
			})
		})

		// everything below requires the admin token
		r.Group(func(r chi.Router) {
			r.Use(response.RequireBearer("admin-token"))

			r.Get("/auth/info", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", map[string]any{"id": 1, "username": "root", "realName": "Root Admin"})
			})
			r.Get("/spots", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", map[string]any{
					"list":     []map[string]any{{"id": 5, "name": "Temple", "price": 30.5, "published": true}},
					"total":    1,
					"page":     1,
					"pageSize": 10,
				})
			})
			r.Post("/spots", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", map[string]any{"id": 77})
			})
			r.Put("/spots/{id}/publish", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", nil)
			})
			r.Delete("/spots/{id}", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 20001, "spot not found", nil)
			})
			r.Get("/dashboard/overview", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", map[string]any{"totalUsers": 12, "totalRevenue": 880.5})
			})
			r.Get("/dashboard/order-trend", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", map[string]any{"list": []map[string]any{
					{"date": "2025-05-01", "orderCount": 3, "revenue": 90},
					{"date": "2025-05-02", "orderCount": 1, "revenue": 30},
				}})
			})
			r.Post("/orders/{id}/refund", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", map[string]any{"id": 9, "status": "REFUNDED"})
			})
			r.Get("/orders", func(w http.ResponseWriter, req *http.Request) {
				response.RespondWithEnvelope(w, 0, "success", map[string]any{"list": []any{}, "total": 0, "page": 1, "pageSize": 10})
			})
		})
	})

	r.Get("/api/v1/spots/filters", func(w http.ResponseWriter, req *http.Request) {
		response.RespondWithEnvelope(w, 0, "success", map[string]any{
			"regions":    []map[string]any{{"id": 1, "name": "Hangzhou"}},
			"categories": []map[string]any{{"id": 2, "name": "Lake"}},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sess := session.New(session.NewMemoryStore(), session.AdminKeys)
	adminClient := client.New(client.Options{BaseURL: srv.URL + "/api/admin/v1"}, sess, nil)
	publicClient := client.New(client.Options{BaseURL: srv.URL + "/api/v1"}, sess, nil)

	return New(adminClient, publicClient), sess, fake
}

func TestLogin(t *testing.T) {
	a, sess, _ := newFakeServer(t)
	ctx := context.Background()

	if _, err := a.Login(ctx, "root", "wrong"); err == nil {
		t.Fatal("Login() with bad password succeeded")
	}
	if sess.IsLoggedIn() {
		t.Fatal("failed login stored a token")
	}

	res, err := a.Login(ctx, "root", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Admin.Username != "root" || res.ExpiresIn != 86400 {
		t.Errorf("LoginResult = %+v", res)
	}
	if sess.Token() != "admin-token" {
		t.Errorf("session token = %q", sess.Token())
	}

	var profile AdminProfile
	if _, err := sess.DecodeUserInfo(&profile); err != nil {
		t.Fatal(err)
	}
	if profile.RealName != "Root" {
		t.Errorf("cached profile = %+v", profile)
	}

	info, err := a.Info(ctx)
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.RealName != "Root Admin" {
		t.Errorf("Info() = %+v", info)
	}
	if _, err := sess.DecodeUserInfo(&profile); err != nil {
		t.Fatal(err)
	}
	if profile.RealName != "Root Admin" {
		t.Errorf("profile not refreshed: %+v", profile)
	}
}

func TestSpotManagement(t *testing.T) {
	a, _, fake := newFakeServer(t)
	ctx := context.Background()
	if _, err := a.Login(ctx, "root", "secret"); err != nil {
		t.Fatal(err)
	}

	published := 1
	page, err := a.ListSpots(ctx, SpotListParams{Keyword: "temple", RegionID: 3, Published: &published})
	if err != nil {
		t.Fatalf("ListSpots() error = %v", err)
	}
	if page.Total != 1 || len(page.List) != 1 || page.List[0].Price != 30.5 || !page.List[0].Published {
		t.Errorf("page = %+v", page)
	}
	wantQuery := map[string]string{"keyword": "temple", "regionId": "3", "published": "1"}
	for k, v := range wantQuery {
		if fake.lastQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, fake.lastQuery[k], v)
		}
	}
	if _, ok := fake.lastQuery["categoryId"]; ok {
		t.Error("zero categoryId was sent")
	}

	id, err := a.CreateSpot(ctx, SpotRequest{Name: "New Spot", Price: 10})
	if err != nil || id != 77 {
		t.Errorf("CreateSpot() = %d, %v", id, err)
	}
	if fake.lastBody["name"] != "New Spot" {
		t.Errorf("create body = %v", fake.lastBody)
	}

	if err := a.PublishSpot(ctx, 77, false); err != nil {
		t.Fatalf("PublishSpot() error = %v", err)
	}
	if fake.lastBody["published"] != false {
		t.Errorf("publish body = %v", fake.lastBody)
	}

	err = a.DeleteSpot(ctx, 404)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != 20001 {
		t.Errorf("DeleteSpot() error = %v, want APIError 20001", err)
	}

	filters, err := a.SpotFilters(ctx)
	if err != nil {
		t.Fatalf("SpotFilters() error = %v", err)
	}
	if len(filters.Regions) != 1 || filters.Categories[0].Name != "Lake" {
		t.Errorf("filters = %+v", filters)
	}
}

func TestDashboardAndOrders(t *testing.T) {
	a, _, fake := newFakeServer(t)
	ctx := context.Background()
	if _, err := a.Login(ctx, "root", "secret"); err != nil {
		t.Fatal(err)
	}

	trend, err := a.OrderTrend(ctx, 0)
	if err != nil {
		t.Fatalf("OrderTrend() error = %v", err)
	}
	if len(trend) != 2 || trend[0].OrderCount != 3 {
		t.Errorf("trend = %+v", trend)
	}
	if fake.lastQuery["days"] != "7" {
		t.Errorf("days = %q, want default 7", fake.lastQuery["days"])
	}

	order, err := a.RefundOrder(ctx, 9)
	if err != nil || order.Status != "REFUNDED" {
		t.Errorf("RefundOrder() = %+v, %v", order, err)
	}

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := a.ListOrders(ctx, OrderListParams{Status: "COMPLETED", StartDate: start}); err != nil {
		t.Fatal(err)
	}
	if fake.lastQuery["startDate"] != "2025-05-01" || fake.lastQuery["status"] != "COMPLETED" {
		t.Errorf("query = %v", fake.lastQuery)
	}
	if _, ok := fake.lastQuery["endDate"]; ok {
		t.Error("zero endDate was sent")
	}
}

func TestSessionInvalidation(t *testing.T) {
	a, sess, _ := newFakeServer(t)
	ctx := context.Background()

	if err := sess.Login("forged", map[string]string{"username": "x"}); err != nil {
		t.Fatal(err)
	}

	_, err := a.Overview(ctx)
	if !client.IsSessionExpired(err) {
		t.Fatalf("Overview() error = %v, want session expired", err)
	}
	if sess.IsLoggedIn() || sess.UserInfo() != nil {
		t.Error("session not cleared")
	}
}
