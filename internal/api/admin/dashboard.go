package admin

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
)

const (
	DefaultTrendDays   = 7
	DefaultHotSpotSize = 10
)

func (a *API) Overview(ctx context.Context) (*Overview, error) {
	return api.Decode[*Overview](a.client.Get(ctx, "/dashboard/overview", nil))
}

// OrderTrend returns daily order counts and revenue for the last days days (DefaultTrendDays when days <= 0)
func (a *API) OrderTrend(ctx context.Context, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	q := api.Query{}
	q.Int("days", days)
	res, err := api.Decode[api.List[TrendPoint]](a.client.Get(ctx, "/dashboard/order-trend", q.Values()))
	return res.List, err
}

func (a *API) HotSpots(ctx context.Context, limit int) ([]HotSpot, error) {
	if limit <= 0 {
		limit = DefaultHotSpotSize
	}
	q := api.Query{}
	q.Int("limit", limit)
	res, err := api.Decode[api.List[HotSpot]](a.client.Get(ctx, "/dashboard/hot-spots", q.Values()))
	return res.List, err
}
