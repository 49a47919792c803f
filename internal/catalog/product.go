package catalog

// Categories is the fixed set a product may belong to.
var Categories = []string{"Pizza", "Burger", "Pasta", "Salad", "Dessert"}

// Product is a catalog listing. Orders copy these fields into their
// item snapshots, so editing or deleting a product never rewrites
// history.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// CreateInput is the admin "add product" payload. Image accepts a URL
// or embedded data-URI image.
type CreateInput struct {
	Name        string  `json:"name"        validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"nullable,max=500"`
	Price       float64 `json:"price"       validate:"numeric,gte=0"`
	Image       string  `json:"image"       validate:"nullable,url"`
	Category    string  `json:"category"    validate:"required,in=Pizza,Burger,Pasta,Salad,Dessert"`
	InStock     bool    `json:"inStock"`
}

// Patch is a partial product update; nil means "leave unchanged".
type Patch struct {
	Name        *string  `json:"name,omitempty"        validate:"nullable,min=2,max=100"`
	Description *string  `json:"description,omitempty" validate:"nullable,max=500"`
	Price       *float64 `json:"price,omitempty"       validate:"nullable,gte=0"`
	Image       *string  `json:"image,omitempty"       validate:"nullable,url"`
	Category    *string  `json:"category,omitempty"    validate:"nullable,in=Pizza,Burger,Pasta,Salad,Dessert"`
	InStock     *bool    `json:"inStock,omitempty"`
}
