package models

// Genre is an immutable reference entity.
type Genre struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

// MPA is the content-classification rating attached to a film.
type MPA struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (MPA) TableName() string {
	return "mpa"
}
