package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/travelhub/travel-client/internal/api"
	"github.com/travelhub/travel-client/internal/api/admin"
	"github.com/travelhub/travel-client/internal/api/portal"
	"github.com/travelhub/travel-client/internal/version"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// promptPassword reads a password from the terminal without echo. It returns "" when stdin is not a terminal.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}

func pageFlags(cmd *cobra.Command, p *api.Pagination) {
	cmd.Flags().IntVar(&p.Page, "page", 0, "page number (server default when 0)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "page size (server default when 0)")
}

func (a *app) loginCmd() *cobra.Command {
	var username, password, code string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Long: `On the admin surface log in with --username and --password (or TRAVEL_PASSWORD, or a prompt on a terminal).
On the portal surface exchange a WeChat login code with --code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if a.surface == surfaceAdmin {
				if password == "" {
					password = os.Getenv("TRAVEL_PASSWORD")
				}
				if password == "" && username != "" {
					p, err := promptPassword()
					if err != nil {
						return err
					}
					password = p
				}
				if username == "" || password == "" {
					return fmt.Errorf("--username and --password are required")
				}
				res, err := a.admin.Login(ctx, username, password)
				if err != nil {
					return err
				}
				return a.print(res.Admin)
			}

			if code == "" {
				return fmt.Errorf("--code is required")
			}
			res, err := a.portal.WxLogin(ctx, code)
			if err != nil {
				return err
			}
			return a.print(res.User)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	cmd.Flags().StringVar(&code, "code", "", "WeChat login code")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if a.surface == surfaceAdmin {
				err = a.admin.Logout()
			} else {
				err = a.portal.Logout()
			}
			if err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			a.log.Info("logged out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			if cached {
				return a.print(a.client.Session().UserInfo())
			}
			if a.surface == surfaceAdmin {
				profile, err := a.admin.Info(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(profile)
			}
			info, err := a.portal.UserInfo(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(info)
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "print the stored profile without calling the API")
	return cmd
}

func (a *app) spotsCmd() *cobra.Command {
	var (
		page       api.Pagination
		keyword    string
		regionID   int64
		categoryID int64
	)

	cmd := &cobra.Command{
		Use:   "spots",
		Short: "List or search scenic spots",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if a.surface == surfaceAdmin {
				res, err := a.admin.ListSpots(ctx, admin.SpotListParams{
					Pagination: page,
					Keyword:    keyword,
					RegionID:   regionID,
					CategoryID: categoryID,
				})
				if err != nil {
					return err
				}
				return a.print(res)
			}

			var (
				res api.Page[portal.Spot]
				err error
			)
			if keyword != "" {
				res, err = a.portal.SearchSpots(ctx, keyword, page)
			} else {
				res, err = a.portal.ListSpots(ctx, portal.SpotListParams{
					Pagination: page,
					RegionID:   regionID,
					CategoryID: categoryID,
				})
			}
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}

	pageFlags(cmd, &page)
	cmd.Flags().StringVar(&keyword, "keyword", "", "search keyword")
	cmd.Flags().Int64Var(&regionID, "region", 0, "region id")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id")
	return cmd
}

func (a *app) spotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spot <id>",
		Short: "Show one scenic spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if a.surface == surfaceAdmin {
				spot, err := a.admin.GetSpot(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.print(spot)
			}
			spot, err := a.portal.SpotDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(spot)
		},
	}
}

func (a *app) ordersCmd() *cobra.Command {
	var (
		page   api.Pagination
		status string
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			if a.surface == surfaceAdmin {
				res, err := a.admin.ListOrders(cmd.Context(), admin.OrderListParams{
					Pagination: page,
					Status:     api.OrderStatus(status),
				})
				if err != nil {
					return err
				}
				return a.print(res)
			}
			res, err := a.portal.ListOrders(cmd.Context(), portal.OrderListParams{
				Pagination: page,
				Status:     api.OrderStatus(status),
			})
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}

	pageFlags(cmd, &page)
	cmd.Flags().StringVar(&status, "status", "", "PENDING_PAYMENT, PENDING_USE, COMPLETED or CANCELLED")
	return cmd
}

func (a *app) bannersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banners",
		Short: "List home page banners",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.surface == surfaceAdmin {
				res, err := a.admin.ListBanners(cmd.Context())
				if err != nil {
					return err
				}
				return a.print(res)
			}
			res, err := a.portal.Banners(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
}

func (a *app) dashboardCmd() *cobra.Command {
	var days, limit int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard statistics (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSurface(surfaceAdmin, "dashboard"); err != nil {
				return err
			}
			ctx := cmd.Context()

			overview, err := a.admin.Overview(ctx)
			if err != nil {
				return err
			}
			trend, err := a.admin.OrderTrend(ctx, days)
			if err != nil {
				return err
			}
			hot, err := a.admin.HotSpots(ctx, limit)
			if err != nil {
				return err
			}

			return a.print(struct {
				Overview *admin.Overview    `json:"overview"`
				Trend    []admin.TrendPoint `json:"orderTrend"`
				HotSpots []admin.HotSpot    `json:"hotSpots"`
			}{overview, trend, hot})
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "days of order trend")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of hot spots")
	return cmd
}

func (a *app) favoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Manage favourite spots (portal)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			return a.requireSurface(surfacePortal, "favorite")
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <spotId>",
			Short: "Add a spot to favourites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.portal.AddFavorite(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "remove <spotId>",
			Short: "Remove a spot from favourites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.portal.RemoveFavorite(cmd.Context(), id)
			},
		},
	)
	return cmd
}

func (a *app) payCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "pay <orderId>",
		Short: "Pay an order (portal)",
		Long:  `Pay an order. Pass --key to retry a payment with the same idempotency key; a new key is generated otherwise.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSurface(surfacePortal, "pay"); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			order, err := a.portal.PayOrder(cmd.Context(), id, key)
			if err != nil {
				return err
			}
			return a.print(order)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "idempotency key")
	return cmd
}

func (a *app) imageURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image-url <path>...",
		Short: "Resolve image paths to absolute URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := make(map[string]string, len(args))
			for _, p := range args {
				urls[p] = a.client.ImageURL(p)
			}
			return a.print(urls)
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(version.Get())
		},
	}
}
