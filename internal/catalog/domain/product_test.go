package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscount(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		original int64
		want     int
	}{
		{"no original price", 25000000, 0, 0},
		{"original equals price", 25000000, 25000000, 0},
		{"original below price", 30000000, 25000000, 0},
		{"one sixth off rounds up", 25000000, 30000000, 17},
		{"ten percent off", 45000000, 50000000, 10},
		{"fifteen percent off", 85000000, 100000000, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.original}
			assert.Equal(t, tt.want, p.Discount())
		})
	}
}
