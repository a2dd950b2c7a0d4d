package entity

// User representa un usuario persistido en el store "user".
// El ID lo asigna la base de datos (columna identity / auto-increment).
type User struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;size:255"`
	LastName string `gorm:"column:last_name;size:255"`
}

// TableName fija el nombre de tabla independientemente de la estrategia de nombres.
func (User) TableName() string { return "users" }

func (u *User) PrimaryKey() int64         { return u.ID }
func (u *User) AssignPrimaryKey(id int64) { u.ID = id }
