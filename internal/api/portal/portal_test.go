package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/client"
	"github.com/travelhub/travel-client/internal/response"
	"github.com/travelhub/travel-client/internal/session"
)

type recorder struct {
	mu       sync.Mutex
	queries  map[string]string
	bodies   []map[string]any
	payKeys  []string
	orderKey string
}

func (r *recorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queries = map[string]string{}
	for k := range req.URL.Query() {
		r.queries[k] = req.URL.Query().Get(k)
	}
	var body map[string]any
	if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
		r.bodies = append(r.bodies, body)
	}
}

func (r *recorder) lastQuery(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries[key]
}

func newPortal(t *testing.T) (*API, *session.Session, *recorder) {
	t.Helper()

	rec := &recorder{}
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				rec.record(req)
				next.ServeHTTP(w, req)
			})
		})

		r.Post("/auth/wx-login", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", map[string]any{
				"token":     "user-token",
				"expiresIn": 3600,
				"user":      map[string]any{"id": 5, "nickname": "traveller", "isNewUser": true},
			})
		})
		r.Post("/auth/preferences", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", nil)
		})
		r.Get("/spots/search", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", map[string]any{
				"list":  []map[string]any{{"id": 1, "name": "Lake", "coverImage": "/img/lake.png"}},
				"total": 1, "page": 1, "pageSize": 10, "totalPages": 1,
			})
		})
		r.Get("/favorites/check/{id}", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", map[string]bool{"isFavorite": chi.URLParam(req, "id") == "1"})
		})
		r.Get("/home/hot", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", map[string]any{"list": []map[string]any{{"id": 1, "name": "Lake", "heatScore": 99}}})
		})
		r.Post("/recommendations/refresh", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", map[string]any{"type": "personal", "list": []any{}, "needPreference": true})
		})
		r.Post("/orders", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", map[string]any{"id": 10, "status": "PENDING_PAYMENT", "canPay": true})
		})
		r.Post("/orders/{id}/pay", func(w http.ResponseWriter, req *http.Request) {
			rec.mu.Lock()
			rec.payKeys = append(rec.payKeys, req.URL.Query().Get("idempotentKey"))
			rec.mu.Unlock()
			response.RespondWithEnvelope(w, 0, "success", map[string]any{"id": 10, "status": "PENDING_USE"})
		})
		r.Post("/orders/{id}/cancel", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 40004, "订单已取消", nil)
		})
		r.Get("/ratings/spot/{id}", func(w http.ResponseWriter, req *http.Request) {
			response.RespondWithEnvelope(w, 0, "success", nil)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	sess := session.New(session.NewMemoryStore(), session.UserKeys)
	c := client.New(client.Options{
		BaseURL:               srv.URL + "/api/v1",
		AssetURL:              "http://cdn.example.com",
		UpgradeInsecureAssets: true,
	}, sess, nil)
	return New(c), sess, rec
}

func TestWxLoginAndPreferences(t *testing.T) {
	p, sess, rec := newPortal(t)
	ctx := context.Background()

	res, err := p.WxLogin(ctx, "wx-code")
	if err != nil {
		t.Fatalf("WxLogin() error = %v", err)
	}
	if !res.User.IsNewUser || sess.Token() != "user-token" {
		t.Errorf("login result = %+v, token = %q", res, sess.Token())
	}
	if got := rec.bodies[len(rec.bodies)-1]["code"]; got != "wx-code" {
		t.Errorf("login body code = %v", got)
	}

	if err := p.SetPreferences(ctx, []string{"nature", "food"}); err != nil {
		t.Fatalf("SetPreferences() error = %v", err)
	}

	var info struct {
		Nickname    string   `json:"nickname"`
		Preferences []string `json:"preferences"`
	}
	if _, err := sess.DecodeUserInfo(&info); err != nil {
		t.Fatal(err)
	}
	if info.Nickname != "traveller" || len(info.Preferences) != 2 {
		t.Errorf("cached profile = %+v", info)
	}

	if err := p.Logout(); err != nil {
		t.Fatal(err)
	}
	if err := p.Logout(); err != nil {
		t.Fatal(err)
	}
	if sess.IsLoggedIn() || sess.UserInfo() != nil {
		t.Error("session not cleared by logout")
	}
}

func TestSearchAndImages(t *testing.T) {
	p, _, rec := newPortal(t)
	ctx := context.Background()

	page, err := p.SearchSpots(ctx, " ｌａｋｅ ", api.Pagination{Page: 2, PageSize: 5})
	if err != nil {
		t.Fatalf("SearchSpots() error = %v", err)
	}
	if rec.lastQuery("keyword") != "lake" || rec.lastQuery("page") != "2" || rec.lastQuery("pageSize") != "5" {
		t.Errorf("query = %v", rec.queries)
	}
	if len(page.List) != 1 || page.TotalPages != 1 {
		t.Fatalf("page = %+v", page)
	}
	if got := p.ImageURL(page.List[0].CoverImage); got != "https://cdn.example.com/img/lake.png" {
		t.Errorf("ImageURL() = %q", got)
	}
}

func TestHomeAndFavorites(t *testing.T) {
	p, _, rec := newPortal(t)
	ctx := context.Background()

	hot, err := p.HotSpots(ctx, 0)
	if err != nil || len(hot) != 1 || hot[0].HeatScore != 99 {
		t.Errorf("HotSpots() = %+v, %v", hot, err)
	}
	if rec.lastQuery("limit") != "10" {
		t.Errorf("limit = %q, want default 10", rec.lastQuery("limit"))
	}

	recs, err := p.RefreshRecommendations(ctx, 4)
	if err != nil || !recs.NeedPreference {
		t.Errorf("RefreshRecommendations() = %+v, %v", recs, err)
	}
	if rec.lastQuery("limit") != "4" {
		t.Errorf("limit = %q, want 4", rec.lastQuery("limit"))
	}

	tests := []struct {
		spotID int64
		want   bool
	}{
		{spotID: 1, want: true},
		{spotID: 2, want: false},
	}
	for _, tt := range tests {
		got, err := p.IsFavorite(ctx, tt.spotID)
		if err != nil || got != tt.want {
			t.Errorf("IsFavorite(%d) = %v, %v, want %v", tt.spotID, got, err, tt.want)
		}
	}
}

func TestOrders(t *testing.T) {
	p, _, rec := newPortal(t)
	ctx := context.Background()

	order, err := p.CreateOrder(ctx, CreateOrderRequest{SpotID: 1, Quantity: 2, VisitDate: "2025-07-01"})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order.Status != api.OrderPendingPayment || !order.CanPay {
		t.Errorf("order = %+v", order)
	}
	key, _ := rec.bodies[len(rec.bodies)-1]["idempotentKey"].(string)
	if len(key) != 36 {
		t.Errorf("generated idempotentKey = %q", key)
	}

	if _, err := p.PayOrder(ctx, 10, "fixed-key"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.PayOrder(ctx, 10, ""); err != nil {
		t.Fatal(err)
	}
	if rec.payKeys[0] != "fixed-key" || rec.payKeys[1] == "" || rec.payKeys[1] == "fixed-key" {
		t.Errorf("pay keys = %v", rec.payKeys)
	}

	_, err = p.CancelOrder(ctx, 10)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "订单已取消" {
		t.Errorf("CancelOrder() error = %v", err)
	}
}

func TestRatings(t *testing.T) {
	p, _, _ := newPortal(t)
	ctx := context.Background()

	if err := p.SubmitRating(ctx, RatingRequest{SpotID: 1, Score: 6}); err == nil {
		t.Error("score 6 accepted")
	}

	rating, err := p.UserRating(ctx, 1)
	if err != nil {
		t.Fatalf("UserRating() error = %v", err)
	}
	if rating != nil {
		t.Errorf("UserRating() = %+v, want nil for unrated spot", rating)
	}
}
