package model

type ChordResponse struct {
	Source string   `json:"source"`
	Tonic  string   `json:"tonic"`
	Notes  []string `json:"notes"`
}

type NameResponse struct {
	Name  string   `json:"name"`
	Notes []string `json:"notes"`
}

type NamesResponse struct {
	Names []string `json:"names"`
}

type ParseRequestBody struct {
	Names []string `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
