package domain

// Order statuses. Delivered is terminal: a delivered order can no longer
// be updated, and only pending orders can be deleted.
const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

// OrderItem pairs a dish reference with a requested quantity. Clients may
// embed the rest of the dish fields; those are carried along untouched and
// never validated against the dish collection.
type OrderItem struct {
	DishID      string `json:"dishId,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Quantity    int    `json:"quantity"`
}

type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       string      `json:"status,omitempty"`
	Dishes       []OrderItem `json:"dishes"`
}
