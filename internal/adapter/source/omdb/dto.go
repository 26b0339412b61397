package omdb

// Envelope carries the discriminator present on every OMDb response
type Envelope struct {
	Response string `json:"Response"` // "True" or "False"
	Error    string `json:"Error,omitempty"`
}

// OK returns true if the upstream reported success
func (e Envelope) OK() bool {
	return e.Response == "True"
}

// SearchResponse is the payload of an `s=` query
type SearchResponse struct {
	Envelope
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
}

// SearchItem is a single search hit
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// DetailResponse is the payload of an `i=` lookup
type DetailResponse struct {
	Envelope
	Title      string         `json:"Title"`
	Year       string         `json:"Year"`
	Rated      string         `json:"Rated"`
	Released   string         `json:"Released"`
	Runtime    string         `json:"Runtime"`
	Genre      string         `json:"Genre"`
	Director   string         `json:"Director"`
	Writer     string         `json:"Writer"`
	Actors     string         `json:"Actors"`
	Plot       string         `json:"Plot"`
	Language   string         `json:"Language"`
	Country    string         `json:"Country"`
	Awards     string         `json:"Awards"`
	Poster     string         `json:"Poster"`
	Ratings    []RatingSource `json:"Ratings"`
	Metascore  string         `json:"Metascore"`
	ImdbRating string         `json:"imdbRating"`
	ImdbVotes  string         `json:"imdbVotes"`
	ImdbID     string         `json:"imdbID"`
	Type       string         `json:"Type"`
}

// RatingSource is one entry of the Ratings array
type RatingSource struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}
