package recipes

import (
	"net/url"
	"strconv"

	"github.com/matt-dz/foodgram/internal/recipe"
)

// parseFilter reads the list filters from the query string. Boolean filters
// accept 1/0 and true/false.
func parseFilter(query url.Values) (recipe.Filter, map[string][]string) {
	var (
		filter recipe.Filter
		fields = make(map[string][]string)
	)

	if raw := query.Get("author"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			fields["author"] = append(fields["author"], "author must be a user id")
		} else {
			filter.AuthorID = &id
		}
	}

	for _, slug := range query["tags"] {
		if slug != "" {
			filter.TagSlugs = append(filter.TagSlugs, slug)
		}
	}

	for name, dst := range map[string]**bool{
		"is_favorited":        &filter.IsFavorited,
		"is_in_shopping_cart": &filter.IsInShoppingCart,
	} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fields[name] = append(fields[name], name+" must be 0 or 1")
			continue
		}
		*dst = &b
	}

	if len(fields) > 0 {
		return recipe.Filter{}, fields
	}
	return filter, nil
}
