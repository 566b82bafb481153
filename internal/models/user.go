package models

// User is a task owner and follower. UUID is the identifier exposed to clients;
// ID stays internal.
type User struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	UUID  string `gorm:"column:uuid;type:varchar(100);not null" json:"uuid"`
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	Admin bool   `gorm:"not null" json:"admin"`

	// Relations
	Tasks   []Task   `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
	Follows []Follow `gorm:"foreignKey:UserID" json:"follows,omitempty"`
}

func (User) TableName() string {
	return "user"
}
