package product

// QueryProductsModel represents filter parameters for querying products.
type QueryProductsModel struct {
	Category string `json:"category,omitempty"`
}
