package models

// CorrectSubmission records a credited flag. The composite primary key
// (user_id, flag_code) is the uniqueness guarantee that prevents a
// participant from being credited twice for the same flag, including under
// concurrent submissions racing on the insert.
type CorrectSubmission struct {
    UserID    int64  `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
    FlagCode  string `gorm:"primaryKey;type:varchar(255);column:flag_code" json:"flag_code"`
    Timestamp string `gorm:"type:varchar(64);not null" json:"timestamp"`
}

// IncorrectSubmission keeps a minimal audit trail of failed attempts. Only
// the first attempt per (user_id, flag_code) is retained; later attempts are
// dropped regardless of reason.
type IncorrectSubmission struct {
    UserID    int64  `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
    FlagCode  string `gorm:"primaryKey;type:varchar(255);column:flag_code" json:"flag_code"`
    Timestamp string `gorm:"type:varchar(64);not null" json:"timestamp"`
    Reason    string `gorm:"type:varchar(64);not null" json:"reason"`
}
