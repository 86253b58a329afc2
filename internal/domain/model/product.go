package model

// 商品カタログ。外部のカタログシステムが所有していて、
// このサービスは読み取りしかしない（AutoMigrate対象外）。
type Product struct {
	ProductID    int64   `gorm:"column:product_id;primaryKey" json:"product_id"`
	Name         string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price        float64 `gorm:"column:price;not null" json:"price"`
	SellingPrice float64 `gorm:"column:selling_price;not null" json:"selling_price"`
	ImageURL     string  `gorm:"column:image_url;type:text" json:"image_url"`
}

func (Product) TableName() string {
	return "products"
}
