package model

// Domain is one of the six fixed coaching-competency areas
type Domain struct {
	ID           int    `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description" bson:"description"`
	ColorHex     string `json:"colorHex" bson:"colorHex"`
	IconEmoji    string `json:"iconEmoji" bson:"iconEmoji"`
	DisplayOrder int    `json:"displayOrder" bson:"displayOrder"` // drives question sequencing and hex vertex placement
}

// Question is a single Likert item in the assessment catalog
type Question struct {
	ID       int    `json:"id" bson:"_id"`
	DomainID int    `json:"domainId" bson:"domainId"`
	Text     string `json:"text" bson:"text"`
	Order    int    `json:"order" bson:"order"`
}

// Catalog bundles the static reference data served to clients
type Catalog struct {
	Domains   []Domain   `json:"domains"`
	Questions []Question `json:"questions"`
}
