package admin

import "github.com/travelhub/travel-client/internal/api"

// =============================================================================
// ADMIN API TYPES
// =============================================================================
// Field names follow the JSON produced by the admin API (camelCase).
// Timestamps are kept as the strings the server sends.

type AdminProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RealName string `json:"realName"`
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	Admin     AdminProfile `json:"admin"`
}

type AdminAccount struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	RealName    string `json:"realName"`
	Status      int    `json:"status"`
	LastLoginAt string `json:"lastLoginAt,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RealName string `json:"realName,omitempty"`
	Status   *int   `json:"status,omitempty"`
}

type UpdateAdminRequest struct {
	RealName string `json:"realName,omitempty"`
	Status   *int   `json:"status,omitempty"`
}

type Spot struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CoverImage   string  `json:"coverImage"`
	Price        float64 `json:"price"`
	RegionName   string  `json:"regionName"`
	CategoryName string  `json:"categoryName"`
	AvgRating    float64 `json:"avgRating"`
	RatingCount  int     `json:"ratingCount"`
	HeatScore    int     `json:"heatScore"`
	Published    bool    `json:"published"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

// SpotRequest is the body for creating or updating a spot
type SpotRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	OpenTime    string   `json:"openTime,omitempty"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Images      []string `json:"images,omitempty"`
	RegionID    int64    `json:"regionId,omitempty"`
	CategoryID  int64    `json:"categoryId,omitempty"`
	Published   bool     `json:"published"`
	AvgRating   *float64 `json:"avgRating,omitempty"`
	RatingCount *int     `json:"ratingCount,omitempty"`
	HeatScore   *int     `json:"heatScore,omitempty"`
}

// SpotDetail is the full spot record used to populate the edit form
type SpotDetail struct {
	SpotRequest
	ID int64 `json:"id"`
}

type Guide struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	CoverImage string `json:"coverImage"`
	Category   string `json:"category"`
	ViewCount  int    `json:"viewCount"`
	Published  bool   `json:"published"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

type GuideSpotOption struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Published int    `json:"published"`
	IsDeleted int    `json:"isDeleted"`
}

type GuideRequest struct {
	Title       string            `json:"title"`
	CoverImage  string            `json:"coverImage,omitempty"`
	Category    string            `json:"category,omitempty"`
	Content     string            `json:"content,omitempty"`
	Published   bool              `json:"published"`
	SpotIDs     []int64           `json:"spotIds,omitempty"`
	SpotOptions []GuideSpotOption `json:"spotOptions,omitempty"`
}

type GuideDetail struct {
	GuideRequest
	ID int64 `json:"id"`
}

type Order struct {
	ID           int64           `json:"id"`
	OrderNo      string          `json:"orderNo"`
	UserID       int64           `json:"userId"`
	UserNickname string          `json:"userNickname"`
	SpotID       int64           `json:"spotId"`
	SpotName     string          `json:"spotName"`
	UnitPrice    float64         `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	TotalPrice   float64         `json:"totalPrice"`
	VisitDate    string          `json:"visitDate"`
	ContactName  string          `json:"contactName"`
	ContactPhone string          `json:"contactPhone"`
	Status       api.OrderStatus `json:"status"`
	StatusText   string          `json:"statusText"`
	PaidAt       string          `json:"paidAt,omitempty"`
	CompletedAt  string          `json:"completedAt,omitempty"`
	CancelledAt  string          `json:"cancelledAt,omitempty"`
	RefundedAt   string          `json:"refundedAt,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
}

type Banner struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"imageUrl"`
	SpotID    int64  `json:"spotId"`
	SpotName  string `json:"spotName"`
	SortOrder int    `json:"sortOrder"`
	Enabled   int    `json:"enabled"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type BannerList struct {
	List  []Banner `json:"list"`
	Total int64    `json:"total"`
}

type BannerRequest struct {
	ImageURL  string `json:"imageUrl"`
	SpotID    int64  `json:"spotId,omitempty"`
	SortOrder int    `json:"sortOrder"`
	Enabled   int    `json:"enabled"`
}

type User struct {
	ID            int64  `json:"id"`
	Nickname      string `json:"nickname"`
	Avatar        string `json:"avatar"`
	Phone         string `json:"phone"`
	OrderCount    int    `json:"orderCount"`
	FavoriteCount int    `json:"favoriteCount"`
	RatingCount   int    `json:"ratingCount"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

type RecentOrder struct {
	ID        int64  `json:"id"`
	OrderNo   string `json:"orderNo"`
	SpotName  string `json:"spotName"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type UserDetail struct {
	User
	Preferences  string        `json:"preferences"`
	RecentOrders []RecentOrder `json:"recentOrders"`
}

type Overview struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalSpots    int64   `json:"totalSpots"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TodayOrders   int64   `json:"todayOrders"`
	TodayRevenue  float64 `json:"todayRevenue"`
	TodayNewUsers int64   `json:"todayNewUsers"`
}

type TrendPoint struct {
	Date       string  `json:"date"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
}

type HotSpot struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	OrderCount int64   `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
	AvgRating  float64 `json:"avgRating"`
}
