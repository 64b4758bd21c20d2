package portal

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/client"
)

const DefaultLimit = 10

func limitQuery(limit int) api.Query {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := api.Query{}
	q.Int("limit", limit)
	return q
}

func (a *API) Banners(ctx context.Context) ([]Banner, error) {
	res, err := api.Decode[api.List[Banner]](a.client.Get(ctx, "/home/banners", nil))
	return res.List, err
}

func (a *API) HotSpots(ctx context.Context, limit int) ([]HotSpot, error) {
	res, err := api.Decode[api.List[HotSpot]](a.client.Get(ctx, "/home/hot", limitQuery(limit).Values()))
	return res.List, err
}

func (a *API) Recommendations(ctx context.Context, limit int) (*Recommendations, error) {
	return api.Decode[*Recommendations](a.client.Get(ctx, "/recommendations", limitQuery(limit).Values()))
}

// RefreshRecommendations asks the server to recompute the recommendations before returning them
func (a *API) RefreshRecommendations(ctx context.Context, limit int) (*Recommendations, error) {
	return api.Decode[*Recommendations](a.client.Post(ctx, "/recommendations/refresh", nil, client.WithQuery(limitQuery(limit).Values())))
}
