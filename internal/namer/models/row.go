package models

// NamedNumber type is used to represent a number together with its words.
type NamedNumber struct {
	Number int64  `json:"number"`
	Words  string `json:"words"`
}
