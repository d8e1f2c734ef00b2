package model

// User は利用者。emailとphoneだけが一意キーで、usernameは重複してよい。
// パスワードはハッシュのみ保存し、レスポンスには出さない。
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:varchar(100);not null" json:"username"`
	Email        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Phone        string `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
	RoleID       int64  `gorm:"column:rol_id;not null" json:"-"`
	Role         Role   `gorm:"foreignKey:RoleID" json:"rol"`
	Address      string `gorm:"type:varchar(500)" json:"address,omitempty"`
}

func (User) TableName() string { return "usuarios" }
