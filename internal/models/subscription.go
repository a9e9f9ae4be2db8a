package models

type Subscription struct {
	// Ids of the applications this subscription covers
	Applications []string `json:"applications"`
	// Nil when the stored row has no api identifier
	APIIdentifier *string `json:"apiIdentifier,omitempty"`
}
