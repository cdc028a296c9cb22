package domain

// Product is one entry of the remote catalog. The catalog is the source of
// truth; products are immutable within a single fetch.
type Product struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// CartLine aggregates one product in the cart. Title and Price are snapshots
// taken when the line was created and are never refreshed from the catalog.
type CartLine struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
