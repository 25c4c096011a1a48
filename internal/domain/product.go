package domain

// Product is a single catalog entry. Immutable after load.
type Product struct {
	Brand      string   `json:"brand"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Camera     float64  `json:"camera"`
	Battery    float64  `json:"battery"`
	Charging   float64  `json:"charging"`
	RAM        float64  `json:"ram"`
	ScreenSize float64  `json:"screen_size"`
	OS         string   `json:"os"`
	Features   []string `json:"features"`
}

// ScoredProduct pairs a product with a relevance score. Both search
// strategies produce this shape: structured hits carry 1.0, semantic hits
// the cosine similarity in [0,1].
type ScoredProduct struct {
	Product Product
	Score   float64
}
