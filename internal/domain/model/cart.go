package model

import "time"

// activeは買い物中のカート。注文一覧からは除外する。
const CartStatusActive = "active"

// カート兼注文。1行で1注文。
// ProductIDsQty はクライアントが送った文字列をそのまま保存する（再エンコードしない）。
// 明細への展開は DecodeLineItems で行う。
type Cart struct {
	CartID          int64     `gorm:"column:cart_id;primaryKey;autoIncrement" json:"cart_id"`
	CartStatus      string    `gorm:"column:cart_status;type:varchar(30);not null;index" json:"cart_status"`
	CartCreatedDate time.Time `gorm:"column:cart_created_date;not null" json:"cart_created_date"`
	CartUpdatedDate time.Time `gorm:"column:cart_updated_date;not null" json:"cart_updated_date"`
	ProductIDsQty   string    `gorm:"column:product_ids_qty;type:text" json:"product_ids_qty"`
	CustomerID      int64     `gorm:"column:customer_id;not null;index" json:"customer_id"`
	TotalCartValue  float64   `gorm:"column:total_cart_value;not null" json:"total_cart_value"`

	//以下は任意項目。NULL許容なのでポインタで持つ。
	DeliveryAddressID *int64   `gorm:"column:delivery_address_id" json:"delivery_address_id"`
	PrescriptionID    *string  `gorm:"column:prescription_id;type:varchar(64)" json:"prescription_id"`
	AutoRefill        *int64   `gorm:"column:auto_refill" json:"auto_refill"`
	CouponSavings     *float64 `gorm:"column:coupon_savings" json:"coupon_savings"`
	PaymentID         *string  `gorm:"column:payment_id;type:varchar(64)" json:"payment_id"`
	PaymentSign       *string  `gorm:"column:payment_sign;type:varchar(128)" json:"payment_sign"`
	ShippingCharge    *float64 `gorm:"column:shipping_charge" json:"shipping_charge"`
	RzpOrderID        *string  `gorm:"column:rzp_order_id;type:varchar(64)" json:"rzp_order_id"`
	OrderTrackingID   *string  `gorm:"column:order_tracking_id;type:varchar(64)" json:"order_tracking_id"`
	CouponApplied     *string  `gorm:"column:coupon_applied;type:varchar(64)" json:"coupon_applied"`
	DeliveryType      *string  `gorm:"column:delivery_type;type:varchar(30)" json:"delivery_type"`
}

// 既存スキーマはテーブル名が単数形
func (Cart) TableName() string {
	return "cart"
}
