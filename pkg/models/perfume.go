package models

type Perfume struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Perfumer      string `json:"perfumer"`
	Year          int    `json:"year"`
	Country       string `json:"country"`
	Gender        string `json:"gender"`
	TopNotes      string `json:"top_notes"`
	MiddleNotes   string `json:"middle_notes"`
	BaseNotes     string `json:"base_notes"`
	Description   string `json:"description"`
	Filename      string `json:"filename"`
	Price         int    `json:"price"`
	Volume        string `json:"volume"`
	FragranceType string `json:"fragrance_type"`
}

// PerfumeInfo carries the editable fields for a targeted catalog update.
type PerfumeInfo struct {
	Title         string `json:"title"`
	Perfumer      string `json:"perfumer"`
	Year          int    `json:"year"`
	Country       string `json:"country"`
	Gender        string `json:"gender"`
	TopNotes      string `json:"top_notes"`
	MiddleNotes   string `json:"middle_notes"`
	BaseNotes     string `json:"base_notes"`
	Description   string `json:"description"`
	Filename      string `json:"filename"`
	Price         int    `json:"price"`
	Volume        string `json:"volume"`
	FragranceType string `json:"fragrance_type"`
}
