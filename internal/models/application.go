package models

type Application struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ApplicationAPIs is one report row: an application and the identifiers of
// every API it is subscribed to. APIs is never nil.
type ApplicationAPIs struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	APIs []string `json:"apis"`
}
