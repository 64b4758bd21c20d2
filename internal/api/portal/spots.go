package portal

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
)

// sort orders accepted by ListSpots
const (
	SortByHeat      = "heat"
	SortByRating    = "rating"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
)

type SpotListParams struct {
	api.Pagination
	RegionID   int64
	CategoryID int64
	SortBy     string
}

func (a *API) ListSpots(ctx context.Context, p SpotListParams) (api.Page[Spot], error) {
	q := api.Query{}
	p.Apply(q)
	q.ID("regionId", p.RegionID)
	q.ID("categoryId", p.CategoryID)
	q.Set("sortBy", p.SortBy)
	return api.Decode[api.Page[Spot]](a.client.Get(ctx, "/spots", q.Values()))
}

func (a *API) SearchSpots(ctx context.Context, keyword string, page api.Pagination) (api.Page[Spot], error) {
	q := api.Query{}
	page.Apply(q)
	q.Keyword("keyword", keyword)
	return api.Decode[api.Page[Spot]](a.client.Get(ctx, "/spots/search", q.Values()))
}

func (a *API) SpotDetail(ctx context.Context, id int64) (*SpotDetail, error) {
	return api.Decode[*SpotDetail](a.client.Get(ctx, api.Path("/spots/%d", id), nil))
}

func (a *API) SpotFilters(ctx context.Context) (*api.SpotFilters, error) {
	return api.Decode[*api.SpotFilters](a.client.Get(ctx, "/spots/filters", nil))
}

type GuideListParams struct {
	api.Pagination
	Category string
	SortBy   string // "time" or "category"
}

func (a *API) ListGuides(ctx context.Context, p GuideListParams) (api.Page[Guide], error) {
	q := api.Query{}
	p.Apply(q)
	q.Set("category", p.Category)
	q.Set("sortBy", p.SortBy)
	return api.Decode[api.Page[Guide]](a.client.Get(ctx, "/guides", q.Values()))
}

func (a *API) GuideDetail(ctx context.Context, id int64) (*GuideDetail, error) {
	return api.Decode[*GuideDetail](a.client.Get(ctx, api.Path("/guides/%d", id), nil))
}

func (a *API) GuideCategories(ctx context.Context) ([]string, error) {
	return api.Decode[[]string](a.client.Get(ctx, "/guides/categories", nil))
}
