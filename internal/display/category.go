// Package display contains presentation lookups: category styles and
// currency formatting.
package display

// Style is the visual representation of a category.
type Style struct {
	Name    string `json:"name" example:"Groceries"`
	Icon    string `json:"icon" example:"fas fa-shopping-cart"`
	Color   string `json:"color" example:"text-green-600"`
	BgColor string `json:"bgColor" example:"bg-green-100"`
}

// fallback is used for all category names without a dedicated style.
var fallback = Style{
	Icon:    "fas fa-receipt",
	Color:   "text-gray-600",
	BgColor: "bg-gray-100",
}

// defaultCategories is ordered the way categories are presented to users.
var defaultCategories = []Style{
	{Name: "Food & Dining", Icon: "fas fa-utensils", Color: "text-red-600", BgColor: "bg-red-100"},
	{Name: "Transport", Icon: "fas fa-car", Color: "text-blue-600", BgColor: "bg-blue-100"},
	{Name: "Groceries", Icon: "fas fa-shopping-cart", Color: "text-green-600", BgColor: "bg-green-100"},
	{Name: "Entertainment", Icon: "fas fa-film", Color: "text-purple-600", BgColor: "bg-purple-100"},
	{Name: "Health", Icon: "fas fa-heartbeat", Color: "text-pink-600", BgColor: "bg-pink-100"},
	{Name: "Shopping", Icon: "fas fa-shopping-bag", Color: "text-orange-600", BgColor: "bg-orange-100"},
	{Name: "Petrol", Icon: "fas fa-gas-pump", Color: "text-yellow-600", BgColor: "bg-yellow-100"},
	{Name: "Mobile Recharge", Icon: "fas fa-mobile-alt", Color: "text-indigo-600", BgColor: "bg-indigo-100"},
}

var styles = func() map[string]Style {
	m := make(map[string]Style, len(defaultCategories))
	for _, s := range defaultCategories {
		m[s.Name] = s
	}
	return m
}()

// CategoryStyle returns the style for a category name.
//
// Unknown names get a neutral receipt icon in gray.
func CategoryStyle(name string) Style {
	if s, ok := styles[name]; ok {
		return s
	}

	s := fallback
	s.Name = name
	return s
}

// DefaultCategories returns the categories every installation starts with.
func DefaultCategories() []Style {
	out := make([]Style, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}
