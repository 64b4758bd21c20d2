package portal

import "github.com/travelhub/travel-client/internal/api"

// UserProfile is the profile returned by the WeChat login exchange and cached in the session
type UserProfile struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Phone     string `json:"phone"`
	IsNewUser bool   `json:"isNewUser"`
}

type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expiresIn"`
	User      UserProfile `json:"user"`
}

type UserInfo struct {
	ID          int64    `json:"id"`
	Nickname    string   `json:"nickname"`
	Avatar      string   `json:"avatar"`
	Phone       string   `json:"phone"`
	Preferences []string `json:"preferences"`
}

type UpdateUserInfoRequest struct {
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type Spot struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CoverImage   string  `json:"coverImage"`
	Price        float64 `json:"price"`
	AvgRating    float64 `json:"avgRating"`
	RatingCount  int     `json:"ratingCount"`
	RegionName   string  `json:"regionName"`
	CategoryName string  `json:"categoryName"`
}

type Comment struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

type SpotDetail struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	OpenTime       string    `json:"openTime"`
	Address        string    `json:"address"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Images         []string  `json:"images"`
	AvgRating      float64   `json:"avgRating"`
	RatingCount    int       `json:"ratingCount"`
	RegionName     string    `json:"regionName"`
	CategoryName   string    `json:"categoryName"`
	IsFavorite     bool      `json:"isFavorite"`
	UserRating     *int      `json:"userRating"`
	LatestComments []Comment `json:"latestComments"`
}

type Guide struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	CoverImage string `json:"coverImage"`
	Category   string `json:"category"`
	Summary    string `json:"summary"`
	ViewCount  int    `json:"viewCount"`
	CreatedAt  string `json:"createdAt"`
}

type RelatedSpot struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CoverImage string `json:"coverImage"`
	Price      string `json:"price"`
}

type GuideDetail struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	CoverImage   string        `json:"coverImage"`
	Category     string        `json:"category"`
	Content      string        `json:"content"`
	ViewCount    int           `json:"viewCount"`
	CreatedAt    string        `json:"createdAt"`
	RelatedSpots []RelatedSpot `json:"relatedSpots"`
}

type Banner struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"imageUrl"`
	SpotID    int64  `json:"spotId"`
	SpotName  string `json:"spotName"`
	SortOrder int    `json:"sortOrder"`
}

type HotSpot struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CoverImage   string  `json:"coverImage"`
	Price        float64 `json:"price"`
	AvgRating    float64 `json:"avgRating"`
	HeatScore    int     `json:"heatScore"`
	CategoryName string  `json:"categoryName"`
}

type RecommendedSpot struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CoverImage   string  `json:"coverImage"`
	Price        float64 `json:"price"`
	AvgRating    float64 `json:"avgRating"`
	RatingCount  int     `json:"ratingCount"`
	CategoryName string  `json:"categoryName"`
	RegionName   string  `json:"regionName"`
	Score        float64 `json:"score"`
}

type Recommendations struct {
	Type           string            `json:"type"`
	List           []RecommendedSpot `json:"list"`
	NeedPreference bool              `json:"needPreference"`
}

type CreateOrderRequest struct {
	SpotID        int64  `json:"spotId"`
	Quantity      int    `json:"quantity"`
	VisitDate     string `json:"visitDate"` // yyyy-mm-dd
	ContactName   string `json:"contactName"`
	ContactPhone  string `json:"contactPhone"`
	IdempotentKey string `json:"idempotentKey,omitempty"`
}

type Order struct {
	ID         int64           `json:"id"`
	OrderNo    string          `json:"orderNo"`
	SpotID     int64           `json:"spotId"`
	SpotName   string          `json:"spotName"`
	SpotImage  string          `json:"spotImage"`
	UnitPrice  float64         `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	TotalPrice float64         `json:"totalPrice"`
	VisitDate  string          `json:"visitDate"`
	Status     api.OrderStatus `json:"status"`
	StatusText string          `json:"statusText"`
	CreatedAt  string          `json:"createdAt"`
}

type OrderDetail struct {
	Order
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	PaidAt       string `json:"paidAt,omitempty"`
	CancelledAt  string `json:"cancelledAt,omitempty"`
	RefundedAt   string `json:"refundedAt,omitempty"`
	CompletedAt  string `json:"completedAt,omitempty"`
	CanPay       bool   `json:"canPay"`
	CanCancel    bool   `json:"canCancel"`
}

type RatingRequest struct {
	SpotID  int64  `json:"spotId"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

type Rating struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	SpotID    int64  `json:"spotId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}
