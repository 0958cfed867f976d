package movies

// Movie is a record read back from the collection. ID is the key the store
// assigned on creation.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	OpeningText string `json:"openingText"`
	ReleaseDate string `json:"releaseDate"`
}

// NewMovie is the payload posted to the collection. The store assigns the id.
type NewMovie struct {
	Title       string `json:"title"`
	OpeningText string `json:"openingText"`
	ReleaseDate string `json:"releaseDate"`
}

// document mirrors a stored value; the id lives in the enclosing key.
type document struct {
	Title       string `json:"title"`
	OpeningText string `json:"openingText"`
	ReleaseDate string `json:"releaseDate"`
}

// AddResponse is what a Firebase-style store answers to a POST.
type AddResponse struct {
	Name string `json:"name"`
}
