package models

type Task struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Completed bool   `gorm:"not null" json:"completed"`
	Content   string `gorm:"type:varchar(500);not null" json:"content"`
	UserID    uint64 `gorm:"not null" json:"user_id"`

	// Relations
	Follows []Follow `gorm:"foreignKey:TaskID" json:"-"`
}

func (Task) TableName() string {
	return "task"
}
