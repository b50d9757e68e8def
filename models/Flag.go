package models

// Flag represents a secret code tied to one challenge and a fixed point value.
// Flags are registered once at startup and never mutated afterwards; the
// auto-increment ID preserves registration order for status reporting.
type Flag struct {
    ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
    Code          string `gorm:"type:varchar(255);not null;uniqueIndex" json:"code"`
    Points        int    `gorm:"type:integer;not null" json:"points"`
    ChallengeName string `gorm:"type:varchar(255);not null;column:challenge_name" json:"challenge_name"`
}
