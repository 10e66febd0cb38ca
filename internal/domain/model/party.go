package model

// festas(id, nome, data, local, user_id)
type Party struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"column:nome;type:varchar(255);not null"`
	Date     string `gorm:"column:data;type:varchar(64);not null"`
	Location string `gorm:"column:local;type:varchar(255);not null"`
	UserID   int64  `gorm:"column:user_id;not null;index"`
	Owner    *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Party) TableName() string { return "festas" }
