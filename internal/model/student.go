package model

import "time"

type Student struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	NIS       string    `json:"nis" gorm:"column:nis;type:varchar(255);uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;index"`
	Kelas     string    `json:"kelas" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
