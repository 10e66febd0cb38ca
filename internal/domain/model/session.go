package model

import "time"

// ブラウザセッション（サーバー側の状態）。
// IDはUUIDv4で、クライアントには署名付きトークンとして渡す。
type Session struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    int64     `gorm:"not null;index"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (Session) TableName() string { return "sessions" }

// 期限切れかどうか
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// リクエスト中のログイン主体
type Principal struct {
	User      *User
	SessionID string
}

func (p *Principal) UserID() int64 {
	if p == nil || p.User == nil {
		return 0
	}
	return p.User.ID
}

// クッキーに入れる署名付きトークンの中身
type SessionToken struct {
	SessionID string
	UserID    int64
	ExpiresAt time.Time
}
