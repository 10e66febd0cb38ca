package model

import "time"

// カートの明細
// 数量は持たない。同じ商品を複数回追加すると行が増える。
// セッション削除でCASCADE削除される。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	SessionID string    `gorm:"type:varchar(36);not null;index"`
	Session   *Session  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	ProductID int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (CartItem) TableName() string { return "cart_items" }
