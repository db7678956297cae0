package scryfall

// Card is the subset of the Scryfall card object the downloader needs.
type Card struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Set             string            `json:"set"`
	CollectorNumber string            `json:"collector_number"`
	ImageURIs       map[string]string `json:"image_uris"`
	CardFaces       []CardFace        `json:"card_faces"`
}

// CardFace is one face of a double-faced card. Faces carry their own
// image URIs; the parent card then has none.
type CardFace struct {
	Name      string            `json:"name"`
	ImageURIs map[string]string `json:"image_uris"`
}

// searchPage is one page of a paginated /cards/search response.
type searchPage struct {
	Data     []Card `json:"data"`
	HasMore  bool   `json:"has_more"`
	NextPage string `json:"next_page"`
}

// ImageVersions lists the image sizes Scryfall serves. For printing,
// png is the one worth having.
var ImageVersions = []string{"png", "large", "normal", "art_crop", "border_crop"}
