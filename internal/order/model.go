package order

// OrderStatus is a free-form order state; nothing enforces transitions
// between values.
type OrderStatus string

const StatusNew OrderStatus = "NEW"

func (os OrderStatus) String() string {
	return string(os)
}

// Order references its user and product by id only; neither reference is
// validated against the owning service at write time.
type Order struct {
	ID        int64       `json:"id" db:"id"`
	UserID    int64       `json:"userId" db:"user_id"`
	ProductID int64       `json:"productId" db:"product_id"`
	Quantity  int64       `json:"quantity" db:"quantity"`
	Status    OrderStatus `json:"status" db:"status"`
}
