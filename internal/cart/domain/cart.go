package domain

import (
	"sort"
	"strings"

	catalog "github.com/maricoIR/HengamGallery/internal/catalog/domain"
)

// Line is one distinct purchasable configuration: a product plus a specific
// variation selection. Two lines are the same logical entry iff the product
// id and the variation signature are both equal.
type Line struct {
	ID         int64             `json:"id"`
	Product    catalog.Product   `json:"product"`
	Quantity   int               `json:"quantity"`
	Variations map[string]string `json:"selected_variations,omitempty"`
}

// Signature serializes a variation selection deterministically. The
// reference system compared JSON-encoded maps byte for byte; Go map order
// is randomized, so axes are sorted before encoding.
func Signature(variations map[string]string) string {
	if len(variations) == 0 {
		return ""
	}
	axes := make([]string, 0, len(variations))
	for axis := range variations {
		axes = append(axes, axis)
	}
	sort.Strings(axes)

	var b strings.Builder
	for i, axis := range axes {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(axis)
		b.WriteByte('=')
		b.WriteString(variations[axis])
	}
	return b.String()
}

// Cart holds lines in insertion order plus derived totals. The totals are
// never adjusted incrementally; Recompute folds over the lines after every
// mutation.
type Cart struct {
	Lines      []Line `json:"items"`
	TotalItems int    `json:"total_items"`
	TotalPrice int64  `json:"total_price"`
}

func (c *Cart) Recompute() {
	items := 0
	var price int64
	for _, line := range c.Lines {
		items += line.Quantity
		price += int64(line.Quantity) * line.Product.Price
	}
	c.TotalItems = items
	c.TotalPrice = price
}

// FindLine returns the index of the line matching product id and variation
// signature, or -1.
func (c *Cart) FindLine(productID int64, signature string) int {
	for i, line := range c.Lines {
		if line.Product.ID == productID && Signature(line.Variations) == signature {
			return i
		}
	}
	return -1
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
