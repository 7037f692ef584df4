package models

type User struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" gorm:"not null"`
	Login    string `json:"login" gorm:"not null"`
	Name     string `json:"name"` // defaults to Login when blank
	Birthday Date   `json:"birthday" gorm:"type:date"`
}

func (User) TableName() string {
	return "users"
}

// FriendEdge is one direction of a friendship. Two rows are written per pair so
// that friend lookups never need a self-join. The surrogate id preserves edge
// insertion order.
type FriendEdge struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	UserID   int   `gorm:"column:id_user;uniqueIndex:idx_friend_pair"`
	FriendID int   `gorm:"column:id_friend;uniqueIndex:idx_friend_pair"`
}

func (FriendEdge) TableName() string {
	return "friends"
}
