package product

const imageParams = "?w=400&h=400&fit=crop&crop=center"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + imageParams
}

var defaultProducts = []Product{
	// MENS
	{Slug: "box-shirt-black", Name: "Box Shirt Black", Price: "$280", Category: CategoryMens, Image: unsplash("photo-1521572163474-6864f9cf17ab")},
	{Slug: "box-shirt-white", Name: "Box Shirt White", Price: "$280", Category: CategoryMens, Image: unsplash("photo-1586790170083-2f9ceadc732d")},
	{Slug: "casual-tee-grey", Name: "Casual Tee Grey", Price: "$120", Category: CategoryMens, Image: unsplash("photo-1583743814966-8936f37f4678")},
	{Slug: "denim-jacket", Name: "Denim Jacket", Price: "$320", Category: CategoryMens, Image: unsplash("photo-1551698618-1dfe5d97d256")},
	{Slug: "wool-sweater", Name: "Wool Sweater", Price: "$240", Category: CategoryMens, Image: unsplash("photo-1564557287817-3785e38ec1f5")},
	{Slug: "chino-pants", Name: "Chino Pants", Price: "$180", Category: CategoryMens, Image: unsplash("photo-1473966968600-fa801b869a1a")},

	// WOMENS
	{Slug: "dress-sand", Name: "Dress Sand", Price: "$340", Category: CategoryWomens, Image: unsplash("photo-1595777457583-95e059d581b8")},
	{Slug: "heel-strap", Name: "Heel Strap", Price: "$420", Category: CategoryWomens, Image: unsplash("photo-1543163521-1bf539c55dd2")},
	{Slug: "silk-blouse", Name: "Silk Blouse", Price: "$290", Category: CategoryWomens, Image: unsplash("photo-1594633312681-425c7b97ccd1")},
	{Slug: "midi-skirt", Name: "Midi Skirt", Price: "$220", Category: CategoryWomens, Image: unsplash("photo-1583496661160-fb5886a13d4e")},
	{Slug: "cashmere-cardigan", Name: "Cashmere Cardigan", Price: "$380", Category: CategoryWomens, Image: unsplash("photo-1544441893-675973e31985")},
	{Slug: "wide-leg-trousers", Name: "Wide Leg Trousers", Price: "$260", Category: CategoryWomens, Image: unsplash("photo-1594633312681-425c7b97ccd1")},

	// FOOTWEAR
	{Slug: "runner-grey", Name: "Runner Grey", Price: "$320", Category: CategoryFootwear, Image: unsplash("photo-1542291026-7eec264c27ff")},
	{Slug: "loafer-black", Name: "Loafer Black", Price: "$390", Category: CategoryFootwear, Image: unsplash("photo-1549298916-b41d501d3772")},
	{Slug: "ankle-boots", Name: "Ankle Boots", Price: "$450", Category: CategoryFootwear, Image: unsplash("photo-1544966503-7cc5ac882d5f")},
	{Slug: "canvas-sneakers", Name: "Canvas Sneakers", Price: "$280", Category: CategoryFootwear, Image: unsplash("photo-1525966222134-fcfa99b8ae77")},
	{Slug: "oxford-shoes", Name: "Oxford Shoes", Price: "$420", Category: CategoryFootwear, Image: unsplash("photo-1582897085656-c636d006a246")},
	{Slug: "hiking-boots", Name: "Hiking Boots", Price: "$380", Category: CategoryFootwear, Image: unsplash("photo-1544966503-7cc5ac882d5f")},

	// ACCESSORIES
	{Slug: "belt-leather", Name: "Leather Belt", Price: "$160", Category: CategoryAccessories, Image: unsplash("photo-1553062407-98eeb64c6a62")},
	{Slug: "sunglasses-oval", Name: "Oval Sunglasses", Price: "$210", Category: CategoryAccessories, Image: unsplash("photo-1572635196237-14b3f281503f")},
	{Slug: "leather-bag", Name: "Leather Bag", Price: "$480", Category: CategoryAccessories, Image: unsplash("photo-1553062407-98eeb64c6a62")},
	{Slug: "wool-scarf", Name: "Wool Scarf", Price: "$120", Category: CategoryAccessories, Image: unsplash("photo-1551698618-1dfe5d97d256")},
	{Slug: "silver-watch", Name: "Silver Watch", Price: "$350", Category: CategoryAccessories, Image: unsplash("photo-1523275335684-37898b6baf30")},
	{Slug: "baseball-cap", Name: "Baseball Cap", Price: "$80", Category: CategoryAccessories, Image: unsplash("photo-1588850561407-ed78c282e89b")},
}

// DefaultCatalog returns the storefront's built-in product list.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultProducts)
}
