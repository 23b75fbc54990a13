package recipes

type ShortLinkResponse struct {
	ShortLink string `json:"short-link"`
}
