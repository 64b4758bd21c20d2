package api

// OrderStatus values used by both surfaces
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderPendingUse     OrderStatus = "PENDING_USE"
	OrderCompleted      OrderStatus = "COMPLETED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

// FilterItem is a region or category option; the *Tree variants nest children
type FilterItem struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	ParentID int64        `json:"parentId,omitempty"`
	IconURL  string       `json:"iconUrl,omitempty"`
	Children []FilterItem `json:"children,omitempty"`
}

// SpotFilters are the options for the spot list filters, served by the end-user API
type SpotFilters struct {
	Regions      []FilterItem `json:"regions"`
	RegionTree   []FilterItem `json:"regionTree"`
	Categories   []FilterItem `json:"categories"`
	CategoryTree []FilterItem `json:"categoryTree"`
}
