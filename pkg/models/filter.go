package models

// SearchFilter carries catalog search criteria between the HTTP layer
// and the catalog service. Prices is either empty or exactly [low, high].
type SearchFilter struct {
	Perfumers []string `json:"perfumers"`
	Genders   []string `json:"genders"`
	Prices    []int    `json:"prices"`
}
