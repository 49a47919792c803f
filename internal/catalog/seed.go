package catalog

// defaultProducts is the catalog a fresh store opens with. IDs are
// fixed so re-seeding is stable.
var defaultProducts = []Product{
	{
		ID:          "1",
		Name:        "Margherita Pizza",
		Description: "Classic pizza with fresh tomatoes, mozzarella, and basil",
		Price:       12.99,
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=500",
		Category:    "Pizza",
		InStock:     true,
	},
	{
		ID:          "2",
		Name:        "Pepperoni Pizza",
		Description: "Delicious pepperoni pizza with cheese and herbs",
		Price:       14.99,
		Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=500",
		Category:    "Pizza",
		InStock:     true,
	},
	{
		ID:          "3",
		Name:        "Caesar Salad",
		Description: "Fresh romaine lettuce with Caesar dressing and croutons",
		Price:       8.99,
		Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=500",
		Category:    "Salad",
		InStock:     true,
	},
	{
		ID:          "4",
		Name:        "Grilled Chicken Burger",
		Description: "Juicy grilled chicken with lettuce, tomato, and special sauce",
		Price:       10.99,
		Image:       "https://images.unsplash.com/photo-1606755962773-d324e0a13086?w=500",
		Category:    "Burger",
		InStock:     true,
	},
	{
		ID:          "5",
		Name:        "Chicken Pasta",
		Description: "Creamy pasta with grilled chicken and vegetables",
		Price:       13.99,
		Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=500",
		Category:    "Pasta",
		InStock:     true,
	},
	{
		ID:          "6",
		Name:        "Spaghetti Carbonara",
		Description: "Traditional Italian pasta with bacon and creamy sauce",
		Price:       12.99,
		Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=500",
		Category:    "Pasta",
		InStock:     true,
	},
	{
		ID:          "7",
		Name:        "Greek Salad",
		Description: "Fresh vegetables with feta cheese and olives",
		Price:       9.99,
		Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=500",
		Category:    "Salad",
		InStock:     true,
	},
	{
		ID:          "8",
		Name:        "Chocolate Cake",
		Description: "Rich chocolate cake with frosting",
		Price:       6.99,
		Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500",
		Category:    "Dessert",
		InStock:     true,
	},
	{
		ID:          "9",
		Name:        "Ice Cream Sundae",
		Description: "Vanilla ice cream with chocolate sauce and toppings",
		Price:       5.99,
		Image:       "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=500",
		Category:    "Dessert",
		InStock:     true,
	},
}
