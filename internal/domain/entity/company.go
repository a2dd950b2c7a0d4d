package entity

// Company representa una empresa persistida en el store "company".
type Company struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:255"`
}

func (Company) TableName() string { return "companies" }

func (c *Company) PrimaryKey() int64         { return c.ID }
func (c *Company) AssignPrimaryKey(id int64) { c.ID = id }
