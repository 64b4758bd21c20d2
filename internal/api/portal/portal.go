// Package portal wraps the end-user API (/api/v1) used by the mini-program.
package portal

import (
	"context"
	"fmt"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/client"
)

type API struct {
	client *client.Client
}

func New(c *client.Client) *API {
	return &API{client: c}
}

// WxLogin exchanges a WeChat login code for a token and stores the token and profile in the session
func (a *API) WxLogin(ctx context.Context, code string) (*LoginResult, error) {
	res, err := api.Decode[*LoginResult](a.client.Post(ctx, "/auth/wx-login", map[string]string{"code": code}))
	if err != nil {
		return nil, err
	}
	if res == nil || res.Token == "" {
		return nil, fmt.Errorf("login response did not contain a token")
	}

	if err := a.client.Session().Login(res.Token, res.User); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return res, nil
}

func (a *API) Logout() error {
	return a.client.Session().Logout()
}

func (a *API) UserInfo(ctx context.Context) (*UserInfo, error) {
	return api.Decode[*UserInfo](a.client.Get(ctx, "/auth/user-info", nil))
}

func (a *API) UpdateUserInfo(ctx context.Context, req UpdateUserInfoRequest) error {
	_, err := a.client.Put(ctx, "/auth/user-info", req)
	return err
}

// SetPreferences saves the preference tags on the server and, on success, in the cached profile
func (a *API) SetPreferences(ctx context.Context, tags []string) error {
	if _, err := a.client.Post(ctx, "/auth/preferences", map[string][]string{"tags": tags}); err != nil {
		return err
	}
	return a.client.Session().UpdateUserInfo(func(info map[string]any) {
		info["preferences"] = tags
	})
}

// ImageURL resolves an image path from an API response against the asset host
func (a *API) ImageURL(path string) string {
	return a.client.ImageURL(path)
}
