package models

// AddOn is a priced modifier attached to a cart line. Its price is added to
// the unit price of every unit of the line.
type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartItem is one line of a cart: a snapshot of the menu item at the moment
// it was added, plus quantity and optional modifiers. Quantity is always
// >= 1; a line whose quantity would drop to zero is removed instead.
type CartItem struct {
	Item_id              string  `json:"item_id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Image_url            string  `json:"image_url"`
	Quantity             int     `json:"quantity"`
	Add_ons              []AddOn `json:"add_ons,omitempty"`
	Special_instructions *string `json:"special_instructions,omitempty"`
}
