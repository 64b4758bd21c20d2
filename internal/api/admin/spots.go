package admin

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
)

type SpotListParams struct {
	api.Pagination
	Keyword    string
	RegionID   int64
	CategoryID int64
	Published  *int // 0 = unpublished, 1 = published, nil = both
}

func (a *API) ListSpots(ctx context.Context, p SpotListParams) (api.Page[Spot], error) {
	q := api.Query{}
	p.Apply(q)
	q.Keyword("keyword", p.Keyword)
	q.ID("regionId", p.RegionID)
	q.ID("categoryId", p.CategoryID)
	q.IntPtr("published", p.Published)
	return api.Decode[api.Page[Spot]](a.client.Get(ctx, "/spots", q.Values()))
}

func (a *API) GetSpot(ctx context.Context, id int64) (*SpotDetail, error) {
	return api.Decode[*SpotDetail](a.client.Get(ctx, api.Path("/spots/%d", id), nil))
}

// CreateSpot returns the id of the new spot
func (a *API) CreateSpot(ctx context.Context, req SpotRequest) (int64, error) {
	created, err := api.Decode[api.Created](a.client.Post(ctx, "/spots", req))
	return created.ID, err
}

func (a *API) UpdateSpot(ctx context.Context, id int64, req SpotRequest) error {
	_, err := a.client.Put(ctx, api.Path("/spots/%d", id), req)
	return err
}

func (a *API) PublishSpot(ctx context.Context, id int64, published bool) error {
	_, err := a.client.Put(ctx, api.Path("/spots/%d/publish", id), map[string]bool{"published": published})
	return err
}

func (a *API) DeleteSpot(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, api.Path("/spots/%d", id))
	return err
}

// SpotFilters returns the region and category options. They are served by the end-user API.
func (a *API) SpotFilters(ctx context.Context) (*api.SpotFilters, error) {
	return api.Decode[*api.SpotFilters](a.public.Get(ctx, "/spots/filters", nil))
}
