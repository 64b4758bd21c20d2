// Package admin wraps the admin dashboard API (/api/admin/v1).
//
// Every method returns the decoded data on success. Errors come from the client package and have already been
// shown to the user through the client's PlatformEffects.
package admin

import (
	"context"
	"fmt"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/client"
)

// API calls the admin surface. public is a client for the end-user surface, used for the few shared lookups
// (spot filters) the admin API does not expose itself.
type API struct {
	client *client.Client
	public *client.Client
}

func New(c *client.Client, public *client.Client) *API {
	if public == nil {
		public = c
	}
	return &API{client: c, public: public}
}

// Login exchanges credentials for a token and stores the token and profile in the client's session
func (a *API) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	res, err := api.Decode[*LoginResult](a.client.Post(ctx, "/auth/login", body))
	if err != nil {
		return nil, err
	}
	if res == nil || res.Token == "" {
		return nil, fmt.Errorf("login response did not contain a token")
	}

	if err := a.client.Session().Login(res.Token, res.Admin); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return res, nil
}

// Info fetches the logged in admin's profile and refreshes the cached copy in the session
func (a *API) Info(ctx context.Context) (*AdminProfile, error) {
	profile, err := api.Decode[*AdminProfile](a.client.Get(ctx, "/auth/info", nil))
	if err != nil {
		return nil, err
	}
	if profile != nil {
		if err := a.client.Session().SetUserInfo(profile); err != nil {
			return nil, fmt.Errorf("saving profile: %w", err)
		}
	}
	return profile, nil
}

func (a *API) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	_, err := a.client.Put(ctx, "/auth/password", body)
	return err
}

// Logout forgets the local session. The admin API has no server-side logout.
func (a *API) Logout() error {
	return a.client.Session().Logout()
}

// =============================================================================
// ADMIN ACCOUNTS
// =============================================================================

type AdminListParams struct {
	api.Pagination
	Keyword string
	Status  *int
}

func (a *API) ListAdmins(ctx context.Context, p AdminListParams) (api.Page[AdminAccount], error) {
	q := api.Query{}
	p.Apply(q)
	q.Keyword("keyword", p.Keyword)
	q.IntPtr("status", p.Status)
	return api.Decode[api.Page[AdminAccount]](a.client.Get(ctx, "/admins", q.Values()))
}

func (a *API) CreateAdmin(ctx context.Context, req CreateAdminRequest) (int64, error) {
	created, err := api.Decode[api.Created](a.client.Post(ctx, "/admins", req))
	return created.ID, err
}

func (a *API) UpdateAdmin(ctx context.Context, id int64, req UpdateAdminRequest) error {
	_, err := a.client.Put(ctx, api.Path("/admins/%d", id), req)
	return err
}

func (a *API) ResetAdminPassword(ctx context.Context, id int64, password string) error {
	_, err := a.client.Put(ctx, api.Path("/admins/%d/password", id), map[string]string{"password": password})
	return err
}

func (a *API) DeleteAdmin(ctx context.Context, id int64) error {
	_, err := a.client.Delete(ctx, api.Path("/admins/%d", id))
	return err
}
