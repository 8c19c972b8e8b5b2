package models

type User struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string  `gorm:"uniqueIndex;not null"     json:"username"`
	Email    string  `gorm:"uniqueIndex;not null"     json:"email"`
	Balance  float64 `gorm:"default:0"                json:"balance"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null"     json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                   json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"                 json:"quantity"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

type Rating struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"                     json:"id"`
	UserID    uint   `gorm:"uniqueIndex:idx_rating_user_product;not null" json:"user_id"`
	ProductID uint   `gorm:"uniqueIndex:idx_rating_user_product;not null" json:"product_id"`
	Score     int    `gorm:"not null;check:score >= 1 AND score <= 5"     json:"score"`
	Review    string `json:"review"`
}
