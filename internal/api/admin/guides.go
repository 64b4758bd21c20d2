package admin

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
)

type GuideListParams struct {
	api.Pagination
	Keyword   string
	Category  string
	Published *int
}

func (a *API) ListGuides(ctx context.Context, p GuideListParams) (api.Page[Guide], error) {
	q := api.Query{}
	p.Apply(q)
	q.Keyword("keyword", p.Keyword)
	q.Set("category", p.Category)
	q.IntPtr("published", p.Published)
	return api.Decode[api.Page[Guide]](a.client.Get(ctx, "/guides", q.Values()))
}

func (a *API) GetGuide(ctx context.Context, id int64) (*GuideDetail, error) {
	return api.Decode[*GuideDetail](a.client.Get(ctx, api.Path("/guides/%d", id), nil))
}

func (a *API) GuideCategories(ctx context.Context) ([]string, error) {
	return api.Decode[[]string](a.client.Get(ctx, "/guides/categories", nil))
}

// CreateGuide returns the id of the new guide
func (a *API) CreateGuide(ctx context.Context, req GuideRequest) (int64, error) {
	created, err := api.Decode[api.Created](a.client.Post(ctx, "/guides", req))
	return created.ID, err
}

func (a *API) UpdateGuide(ctx context.Context, id int64, req GuideRequest) error {
	_, err := a.client.Put(ctx, api.Path("/guides/%d", id), req)
	return err
}

func (a *API) PublishGuide(ctx context.Context, id int64, published bool) error {
	_, err := a.client.Put(ctx, api.Path("/guides/%d/publish", id), map[string]bool{"published": published})
	return err
}

func (a *API) DeleteGuide(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, api.Path("/guides/%d", id))
	return err
}
