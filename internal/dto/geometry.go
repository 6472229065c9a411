package dto

// Geometry is the volumetric payload exchanged with clients. The client
// holds it between the upload and quote calls; the server keeps nothing.
type Geometry struct {
	VolCm3      float64 `json:"vol_cm3" validate:"gte=0"`
	StockVolCm3 float64 `json:"stock_vol_cm3" validate:"gte=0"`
}

// UploadResponse is the body returned by POST /upload.
type UploadResponse struct {
	Geometry Geometry `json:"geometry"`
}
