package models

import "time"

// Pokemon is a catalog entry. The ID comes from the catalog and never changes;
// rows are inserted once and never updated.
type Pokemon struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Weight    int       `json:"weight" gorm:"not null"`
	Height    int       `json:"height" gorm:"not null"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the table name for Pokemon
func (Pokemon) TableName() string {
	return "pokemons"
}
