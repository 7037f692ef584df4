package models

// Film is a catalog entry. MPA and Genres are resolved through the reference
// stores rather than mapped as gorm associations, so both storage backends go
// through the same lookup path.
type Film struct {
	ID          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description" gorm:"size:200"`
	ReleaseDate Date    `json:"releaseDate" gorm:"column:releasedate;type:date"`
	Duration    int     `json:"duration" gorm:"not null"`
	MPAID       int     `json:"-" gorm:"column:mpa_id"`
	MPA         MPA     `json:"mpa" gorm:"-"`
	Genres      []Genre `json:"genres" gorm:"-"`
}

func (Film) TableName() string {
	return "films"
}

// FilmGenre is a row in the film/genre association table.
type FilmGenre struct {
	FilmID  int `gorm:"column:id_film;primaryKey"`
	GenreID int `gorm:"column:id_genre;primaryKey"`
}

func (FilmGenre) TableName() string {
	return "film_genres"
}

// Like records that a user liked a film. At most one row per (film, user) pair.
type Like struct {
	FilmID int `gorm:"column:id_film;primaryKey"`
	UserID int `gorm:"column:id_user;primaryKey"`
}

func (Like) TableName() string {
	return "likes_by_users"
}
