package models

// Category groups menu items on the storefront. The set is fixed: it is
// seeded once at startup and never modified afterwards.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	Icon string `json:"icon"`
}

// MenuItem is a purchasable catalog entry. Price is in whole Rwandan
// francs (RWF has no minor unit in practice).
type MenuItem struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price" gorm:"not null"`
	CategoryID  string   `json:"category" gorm:"index;not null"`
	Category    Category `json:"-" gorm:"foreignKey:CategoryID"`
}
