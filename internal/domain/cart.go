package domain

import "time"

// Cart is the stored form: one document per account, items referencing
// products by ID only.
type Cart struct {
	ID        string     `bson:"_id,omitempty"`
	AccountID string     `bson:"account_id"`
	Items     []CartItem `bson:"items"`
	CreatedAt time.Time  `bson:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// CartItem carries its own ID so the same product cannot appear twice;
// quantities are coalesced onto the existing item instead.
type CartItem struct {
	ID        string    `bson:"item_id"`
	ProductID string    `bson:"product_id"`
	Quantity  int       `bson:"quantity"`
	AddedAt   time.Time `bson:"added_at"`
}

// ResolvedCart is the display form: product references expanded to full
// product data, with aggregates computed on the fly and never stored.
type ResolvedCart struct {
	ID             string         `json:"id"`
	AccountID      string         `json:"accountId"`
	Items          []ResolvedItem `json:"items"`
	TotalItemCount int            `json:"totalItemCount"`
	Subtotal       float64        `json:"subtotal"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type ResolvedItem struct {
	ID       string    `json:"id"`
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}
