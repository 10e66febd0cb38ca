package model

// ログイン主体が持つ能力
type Identifiable interface {
	UserID() int64
}

// パスワード照合ができる主体
type Authenticatable interface {
	Identifiable
	HashedPassword() string
}

// users(id, nome, senha)
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"column:nome;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:senha;not null"`
}

func (User) TableName() string { return "users" }

func (u *User) UserID() int64 { return u.ID }

func (u *User) HashedPassword() string { return u.PasswordHash }

var (
	_ Identifiable    = (*User)(nil)
	_ Authenticatable = (*User)(nil)
)
