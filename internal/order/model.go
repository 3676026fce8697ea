package order

type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
	StatusDelivered Status = "Delivered"
)

type Order struct {
	ID         int     `json:"id"`
	Student    string  `json:"student"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	Status     Status  `json:"status"`
	TotalPrice float64 `json:"total_price"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Total     int `json:"total"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
	Completed int `json:"completed"`
	Delivered int `json:"delivered"`
}

// ComputeStats counts orders by exact status label.
func ComputeStats(orders []Order) Stats {
	stats := Stats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case StatusAccepted:
			stats.Accepted++
		case StatusRejected:
			stats.Rejected++
		case StatusCompleted:
			stats.Completed++
		case StatusDelivered:
			stats.Delivered++
		}
	}
	return stats
}
