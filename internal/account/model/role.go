package model

// Role は権限ロール（"Administrador" / "Usuario" など）。
// ロールを消すと所属ユーザーも消える（Roleが関連を所有する）。
type Role struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:nombre;type:varchar(100);not null;uniqueIndex" json:"nombre"`
	Users []User `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Role) TableName() string { return "roles" }

const (
	RoleAdminName = "Administrador"
	// 公開登録で必ず割り当てるロール。存在しない環境では登録が成立しない。
	RoleUserName = "Usuario"
)
