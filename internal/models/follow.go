package models

// Follow records that a user follows a task. The task may belong to anyone.
// TaskID is nullable: deleting a task detaches its follows instead of removing them.
type Follow struct {
	ID     uint64  `gorm:"primarykey" json:"id"`
	UserID uint64  `gorm:"not null" json:"user_id"`
	TaskID *uint64 `json:"task_id"`
}

func (Follow) TableName() string {
	return "follow"
}
