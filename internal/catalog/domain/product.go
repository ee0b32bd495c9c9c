package domain

// Specifications is the fixed spec sheet shown on the product page.
type Specifications struct {
	Material   string `json:"material"`
	Weight     string `json:"weight"`
	Dimensions string `json:"dimensions"`
	Color      string `json:"color"`
}

// Product is an immutable catalog entry. Prices are whole rials.
type Product struct {
	ID             int64               `json:"id"`
	NameFa         string              `json:"name_fa"`
	NameEn         string              `json:"name_en"`
	Price          int64               `json:"price"`
	OriginalPrice  int64               `json:"original_price,omitempty"`
	Images         []string            `json:"images"`
	Tags           []string            `json:"tags"`
	Stock          int                 `json:"stock"`
	Rating         float64             `json:"rating"`
	Reviews        int                 `json:"reviews"`
	Description    string              `json:"description"`
	Specifications Specifications      `json:"specifications"`
	Variations     map[string][]string `json:"variations,omitempty"`
}

// Category groups products for filtering. Matching against products is a
// substring check on tags, not exact membership.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type InstagramPost struct {
	ID      int64  `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
	Link    string `json:"link"`
}

// Discount returns the rounded discount percentage, or 0 when the product
// has no original price.
func (p Product) Discount() int {
	if p.OriginalPrice <= 0 || p.Price >= p.OriginalPrice {
		return 0
	}
	return int(float64(p.OriginalPrice-p.Price)/float64(p.OriginalPrice)*100 + 0.5)
}
