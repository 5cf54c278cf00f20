package models

import "time"

type Service struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Icon        string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (Service) TableName() string {
	return "services"
}
