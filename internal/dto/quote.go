package dto

// QuoteRequest is the body accepted by POST /quote.
type QuoteRequest struct {
	Geometry  *Geometry `json:"geometry" validate:"required"`
	Material  string    `json:"material" validate:"required,is-material"`
	Tolerance string    `json:"tolerance" validate:"required,is-tolerance"`
	Finish    string    `json:"finish" validate:"required,is-finish"`
	Quantity  int       `json:"quantity" validate:"min=1,max=1000000"`
}

// QuoteResponse is the body returned by POST /quote, both prices rounded to
// 2 decimal places.
type QuoteResponse struct {
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}
