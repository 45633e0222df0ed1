package models

// Product represents an inventory record.
type Product struct {
	Pid         int     `json:"pid"`
	Pname       string  `json:"pname"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
