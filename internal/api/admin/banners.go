package admin

import (
	"context"

	"github.com/travelhub/travel-client/internal/api"
)

func (a *API) ListBanners(ctx context.Context) (*BannerList, error) {
	return api.Decode[*BannerList](a.client.Get(ctx, "/banners", nil))
}

func (a *API) CreateBanner(ctx context.Context, req BannerRequest) error {
	_, err := a.client.Post(ctx, "/banners", req)
	return err
}

func (a *API) UpdateBanner(ctx context.Context, id int64, req BannerRequest) error {
	_, err := a.client.Put(ctx, api.Path("/banners/%d", id), req)
	return err
}

func (a *API) DeleteBanner(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, api.Path("/banners/%d", id))
	return err
}

// ToggleBanner flips the enabled flag
func (a *API) ToggleBanner(ctx context.Context, id int64) error {
	_, err := a.client.Post(ctx, api.Path("/banners/%d/toggle", id), nil)
	return err
}
