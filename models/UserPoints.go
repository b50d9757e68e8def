package models

// UserPoints holds a participant's accumulated point total. A row is created
// on the first successful credit and only ever incremented afterwards; a
// missing row means zero points.
type UserPoints struct {
    UserID int64 `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
    Points int   `gorm:"type:integer;not null;default:0" json:"points"`
}
