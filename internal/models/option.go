package models

// SelectOption is a derived, ephemeral projection of a Student or Course used
// to populate the searchable pickers. Rebuilt whenever the backing cache
// refreshes; never persisted.
type SelectOption struct {
	Value      int64  `json:"value"`
	Text       string `json:"text"`
	SearchText string `json:"searchText"`
}
