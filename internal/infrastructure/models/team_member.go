package models

import "time"

type TeamMember struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(255);not null"`
	Bio       string    `gorm:"type:text;not null"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(500);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

// All lists every model owned by the storage layer, in migration order.
func All() []interface{} {
	return []interface{}{&Contact{}, &Service{}, &TeamMember{}}
}
