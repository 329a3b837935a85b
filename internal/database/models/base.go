package models

import "time"

// BaseModel provides common fields for rows whose primary key is assigned by the database
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
}
