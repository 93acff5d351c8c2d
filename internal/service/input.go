package service

import (
	"encoding/json"

	"grubdash/internal/domain"
)

// DishInput is a dish create/update payload before validation. Price and
// ID are deliberately loose: clients send strings, fractions and zero,
// and those values have to reach the checks that name them instead of
// dying in JSON decoding.
type DishInput struct {
	ID          any    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// toDish builds the stored record from a validated input. The caller
// assigns the id: a generated one on create, the route id on update.
func (in DishInput) toDish() domain.Dish {
	price, _ := positiveInt(in.Price)
	return domain.Dish{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		ImageURL:    in.ImageURL,
	}
}

// OrderItemInput mirrors domain.OrderItem with a loose Quantity, for the
// same reason DishInput has a loose Price.
type OrderItemInput struct {
	DishID      string `json:"dishId,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Quantity    any    `json:"quantity"`
}

// OrderInput is an order create/update payload before validation. Dishes
// stays raw so a non-array value reaches the dish-list check instead of
// failing JSON decoding; a zero-length RawMessage means the field was
// absent from the body.
type OrderInput struct {
	ID           any             `json:"id,omitempty"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status,omitempty"`
	Dishes       json.RawMessage `json:"dishes"`
}

// dishesPresent reports whether the dishes field held a truthy value.
func (in OrderInput) dishesPresent() bool {
	if len(in.Dishes) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(in.Dishes, &v); err != nil {
		return false
	}
	return !falsy(v)
}

// items decodes the dishes array; ok is false when the value is not an
// array at all. A line item that is not an object decodes to a zero
// OrderItemInput, which the quantity check then rejects at that index.
func (in OrderInput) items() ([]OrderItemInput, bool) {
	var raw []json.RawMessage
	if err := json.Unmarshal(in.Dishes, &raw); err != nil {
		return nil, false
	}
	items := make([]OrderItemInput, len(raw))
	for i, r := range raw {
		_ = json.Unmarshal(r, &items[i])
	}
	return items, true
}

// toOrder builds the stored record from a validated input; ids are
// assigned by the caller, as with toDish.
func (in OrderInput) toOrder() domain.Order {
	parsed, _ := in.items()
	items := make([]domain.OrderItem, len(parsed))
	for i, d := range parsed {
		qty, _ := positiveInt(d.Quantity)
		items[i] = domain.OrderItem{
			DishID:      d.DishID,
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			ImageURL:    d.ImageURL,
			Quantity:    qty,
		}
	}
	return domain.Order{
		DeliverTo:    in.DeliverTo,
		MobileNumber: in.MobileNumber,
		Status:       in.Status,
		Dishes:       items,
	}
}
