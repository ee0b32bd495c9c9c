package repository

import "github.com/maricoIR/HengamGallery/internal/catalog/domain"

// seedProducts is the static catalog. Created once at startup, never mutated.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			NameFa:        "گردنبند طلای ۱۸ عیار",
			NameEn:        "18K Gold Necklace",
			Price:         25000000,
			OriginalPrice: 30000000,
			Images: []string{
				"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400",
				"https://images.unsplash.com/photo-1506630448388-4e683c67ddb0?w=400",
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400",
			},
			Tags:        []string{"طلای ۱۸ عیار", "گردنبند", "کلاسیک"},
			Stock:       5,
			Rating:      4.8,
			Reviews:     24,
			Description: "گردنبند زیبا و کلاسیک از طلای ۱۸ عیار با طراحی منحصر به فرد",
			Specifications: domain.Specifications{
				Material:   "طلای ۱۸ عیار",
				Weight:     "۱۵ گرم",
				Dimensions: "۴۵ سانتی‌متر",
				Color:      "طلایی",
			},
			Variations: map[string][]string{
				"size":     {"۴۰ سانتی‌متر", "۴۵ سانتی‌متر", "۵۰ سانتی‌متر"},
				"material": {"طلای ۱۸ عیار", "طلای ۱۴ عیار"},
			},
		},
		{
			ID:     2,
			NameFa: "دستبند نقره‌ای با نگین",
			NameEn: "Silver Bracelet with Gemstone",
			Price:  8500000,
			Images: []string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=400",
				"https://images.unsplash.com/photo-1617038220319-276d4f7b9b0e?w=400",
			},
			Tags:        []string{"نقره", "دستبند", "نگین"},
			Stock:       8,
			Rating:      4.6,
			Reviews:     18,
			Description: "دستبند زیبا از نقره خالص با نگین‌های طبیعی",
			Specifications: domain.Specifications{
				Material:   "نقره ۹۲۵",
				Weight:     "۲۵ گرم",
				Dimensions: "۱۸ سانتی‌متر",
				Color:      "نقره‌ای",
			},
			Variations: map[string][]string{
				"size": {"۱۶ سانتی‌متر", "۱۸ سانتی‌متر", "۲۰ سانتی‌متر"},
			},
		},
		{
			ID:            3,
			NameFa:        "انگشتر الماس",
			NameEn:        "Diamond Ring",
			Price:         45000000,
			OriginalPrice: 50000000,
			Images: []string{
				"https://images.unsplash.com/photo-1603561591411-07134e71a2a9?w=400",
				"https://images.unsplash.com/photo-1596944924616-7b384c9e35d1?w=400",
			},
			Tags:        []string{"الماس", "انگشتر", "لوکس"},
			Stock:       2,
			Rating:      4.9,
			Reviews:     12,
			Description: "انگشتر لوکس با الماس طبیعی و طلای ۱۸ عیار",
			Specifications: domain.Specifications{
				Material:   "طلای ۱۸ عیار + الماس",
				Weight:     "۸ گرم",
				Dimensions: "سایز ۵۴",
				Color:      "طلایی",
			},
			Variations: map[string][]string{
				"size": {"سایز ۵۰", "سایز ۵۲", "سایز ۵۴", "سایز ۵۶"},
			},
		},
		{
			ID:     4,
			NameFa: "گوشواره مروارید",
			NameEn: "Pearl Earrings",
			Price:  12000000,
			Images: []string{
				"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400",
				"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400",
			},
			Tags:        []string{"مروارید", "گوشواره", "کلاسیک"},
			Stock:       6,
			Rating:      4.7,
			Reviews:     15,
			Description: "گوشواره زیبا با مروارید طبیعی و طلای ۱۴ عیار",
			Specifications: domain.Specifications{
				Material:   "طلای ۱۴ عیار + مروارید",
				Weight:     "۶ گرم",
				Dimensions: "۲ سانتی‌متر",
				Color:      "طلایی",
			},
		},
		{
			ID:            5,
			NameFa:        "ساعت مچی طلای ۱۸ عیار",
			NameEn:        "18K Gold Watch",
			Price:         75000000,
			OriginalPrice: 85000000,
			Images: []string{
				"https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=400",
				"https://images.unsplash.com/photo-1519125323398-675f0ddb6308?w=400",
			},
			Tags:        []string{"ساعت", "طلای ۱۸ عیار", "مردانه"},
			Stock:       3,
			Rating:      4.9,
			Reviews:     8,
			Description: "ساعت مچی لوکس مردانه از طلای ۱۸ عیار",
			Specifications: domain.Specifications{
				Material:   "طلای ۱۸ عیار",
				Weight:     "۱۲۰ گرم",
				Dimensions: "۴۲ میلی‌متر",
				Color:      "طلایی",
			},
		},
		{
			ID:     6,
			NameFa: "سرویس طلا زنانه",
			NameEn: "Women's Gold Set",
			Price:  95000000,
			Images: []string{
				"https://images.unsplash.com/photo-1506630448388-4e683c67ddb0?w=400",
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400",
			},
			Tags:        []string{"سرویس", "طلای ۱۸ عیار", "زنانه"},
			Stock:       1,
			Rating:      5.0,
			Reviews:     6,
			Description: "سرویس کامل طلا شامل گردنبند، دستبند و گوشواره",
			Specifications: domain.Specifications{
				Material:   "طلای ۱۸ عیار",
				Weight:     "۸۵ گرم",
				Dimensions: "متنوع",
				Color:      "طلایی",
			},
		},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "گردنبند", Slug: "necklaces"},
		{ID: 2, Name: "دستبند", Slug: "bracelets"},
		{ID: 3, Name: "انگشتر", Slug: "rings"},
		{ID: 4, Name: "گوشواره", Slug: "earrings"},
		{ID: 5, Name: "ساعت", Slug: "watches"},
		{ID: 6, Name: "سرویس", Slug: "sets"},
	}
}

func seedInstagramPosts() []domain.InstagramPost {
	return []domain.InstagramPost{
		{ID: 1, Image: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300", Caption: "گردنبند جدید مجموعه بهار", Link: "https://instagram.com/p/example1"},
		{ID: 2, Image: "https://images.unsplash.com/photo-1506630448388-4e683c67ddb0?w=300", Caption: "انگشتر الماس ویژه", Link: "https://instagram.com/p/example2"},
		{ID: 3, Image: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=300", Caption: "سرویس طلای کلاسیک", Link: "https://instagram.com/p/example3"},
		{ID: 4, Image: "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=300", Caption: "دستبند نقره‌ای جدید", Link: "https://instagram.com/p/example4"},
		{ID: 5, Image: "https://images.unsplash.com/photo-1464983953574-0892a716854b?w=300", Caption: "گوشواره مروارید", Link: "https://instagram.com/p/example5"},
		{ID: 6, Image: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=300", Caption: "ساعت مچی طلایی", Link: "https://instagram.com/p/example6"},
	}
}
