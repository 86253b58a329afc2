package model

import "time"

// 黙って捨てた明細の記録。挙動は変えずに痕跡だけ残す。
type AuditAction string

const (
	//デコードで読み捨てたセグメント。
	AuditActionSegmentDropped AuditAction = "SEGMENT_DROPPED"

	//注文作成時にカタログに存在しなかった商品ID。
	AuditActionUnknownProducts AuditAction = "UNKNOWN_PRODUCTS"
)

// 監査ログ。注文作成時の不可視な除外・拒否を後から追えるようにする。
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//外部参照用のID（uuid）。
	EntryID string `gorm:"type:varchar(36);not null;uniqueIndex" json:"entry_id"`

	//対象のカートID。作成が拒否された場合は0。
	CartID int64 `gorm:"not null;index" json:"cart_id"`

	Action AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	//捨てたセグメントや見つからなかった商品IDなど。
	Detail string `gorm:"type:text" json:"detail"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
