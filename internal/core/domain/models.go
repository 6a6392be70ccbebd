package domain

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     Name   `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

type Name struct {
	First string `json:"firstname"`
	Last  string `json:"lastname"`
}

type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Category is an opaque identifier assigned by the remote API.
type Category = string

type Cart struct {
	ID       int        `json:"id"`
	UserID   int        `json:"userId"`
	Date     string     `json:"date"`
	Products []CartItem `json:"products"`
}

type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
