package catalog

import "github.com/shophub/backend/internal/domain"

// seedProducts is the demo storefront catalog
var seedProducts = []domain.Product{
	{
		ID: "1", Name: "Wireless Noise-Cancelling Headphones", Price: 249.99, OriginalPrice: 299.99,
		Brand: "SoundWave", Rating: 4.7, ReviewCount: 1284, Category: "electronics",
		Image: "/images/products/headphones.jpg", IsSale: true,
	},
	{
		ID: "2", Name: "Smart Fitness Watch", Price: 179.99,
		Brand: "TechPro", Rating: 4.4, ReviewCount: 876, Category: "electronics",
		Image: "/images/products/fitness-watch.jpg", IsNew: true,
	},
	{
		ID: "3", Name: "Portable Bluetooth Speaker", Price: 59.99, OriginalPrice: 89.99,
		Brand: "SoundWave", Rating: 4.2, ReviewCount: 2310, Category: "electronics",
		Image: "/images/products/speaker.jpg", IsSale: true,
	},
	{
		ID: "4", Name: "4K Action Camera", Price: 329.99,
		Brand: "TechPro", Rating: 4.6, ReviewCount: 542, Category: "electronics",
		Image: "/images/products/action-camera.jpg",
	},
	{
		ID: "5", Name: "Mechanical Gaming Keyboard", Price: 129.99,
		Brand: "KeyForge", Rating: 4.8, ReviewCount: 1932, Category: "electronics",
		Image: "/images/products/keyboard.jpg",
	},
	{
		ID: "6", Name: "Classic Leather Jacket", Price: 189.99,
		Brand: "UrbanEdge", Rating: 4.5, ReviewCount: 423, Category: "fashion",
		Image: "/images/products/leather-jacket.jpg",
	},
	{
		ID: "7", Name: "Slim Fit Denim Jeans", Price: 49.99, OriginalPrice: 69.99,
		Brand: "UrbanEdge", Rating: 4.1, ReviewCount: 1105, Category: "fashion",
		Image: "/images/products/jeans.jpg", IsSale: true,
	},
	{
		ID: "8", Name: "Running Sneakers", Price: 94.99,
		Brand: "StrideOne", Rating: 4.6, ReviewCount: 2874, Category: "fashion",
		Image: "/images/products/sneakers.jpg", IsNew: true,
	},
	{
		ID: "9", Name: "Wool Blend Overcoat", Price: 159.99,
		Brand: "Northway", Rating: 4.3, ReviewCount: 218, Category: "fashion",
		Image: "/images/products/overcoat.jpg",
	},
	{
		ID: "10", Name: "Ceramic Pour-Over Coffee Set", Price: 44.99,
		Brand: "Hearthstone", Rating: 4.7, ReviewCount: 689, Category: "home",
		Image: "/images/products/coffee-set.jpg",
	},
	{
		ID: "11", Name: "Weighted Blanket", Price: 79.99, OriginalPrice: 99.99,
		Brand: "Hearthstone", Rating: 4.4, ReviewCount: 1547, Category: "home",
		Image: "/images/products/blanket.jpg", IsSale: true,
	},
	{
		ID: "12", Name: "Smart LED Floor Lamp", Price: 119.99,
		Brand: "Lumina", Rating: 4.2, ReviewCount: 356, Category: "home",
		Image: "/images/products/floor-lamp.jpg", IsNew: true,
	},
	{
		ID: "13", Name: "Cast Iron Dutch Oven", Price: 89.99,
		Brand: "Hearthstone", Rating: 4.9, ReviewCount: 3102, Category: "home",
		Image: "/images/products/dutch-oven.jpg",
	},
	{
		ID: "14", Name: "Yoga Mat with Carry Strap", Price: 29.99,
		Brand: "StrideOne", Rating: 4.0, ReviewCount: 1823, Category: "sports",
		Image: "/images/products/yoga-mat.jpg",
	},
	{
		ID: "15", Name: "Adjustable Dumbbell Set", Price: 249.99, OriginalPrice: 319.99,
		Brand: "IronPeak", Rating: 4.6, ReviewCount: 734, Category: "sports",
		Image: "/images/products/dumbbells.jpg", IsSale: true,
	},
	{
		ID: "16", Name: "Insulated Water Bottle", Price: 24.99,
		Brand: "StrideOne", Rating: 4.5, ReviewCount: 4216, Category: "sports",
		Image: "/images/products/water-bottle.jpg",
	},
	{
		ID: "17", Name: "Trail Running Backpack", Price: 64.99,
		Brand: "Northway", Rating: 4.3, ReviewCount: 489, Category: "sports",
		Image: "/images/products/backpack.jpg",
	},
	{
		ID: "18", Name: "Vitamin C Facial Serum", Price: 34.99, OriginalPrice: 44.99,
		Brand: "GlowLab", Rating: 4.1, ReviewCount: 967, Category: "beauty",
		Image: "/images/products/serum.jpg", IsSale: true,
	},
	{
		ID: "19", Name: "Hydrating Face Moisturizer", Price: 27.99,
		Brand: "GlowLab", Rating: 4.4, ReviewCount: 1342, Category: "beauty",
		Image: "/images/products/moisturizer.jpg",
	},
	{
		ID: "20", Name: "Ionic Hair Dryer", Price: 74.99,
		Brand: "Lumina", Rating: 4.2, ReviewCount: 611, Category: "beauty",
		Image: "/images/products/hair-dryer.jpg", IsNew: true,
	},
}
