package entity

// BrandSequence nombre de la fila en id_sequences que genera los IDs de Brand.
const BrandSequence = "brands"

// Brand representa una marca persistida en el store "brand".
// A diferencia de User y Company, el ID no es identity: se toma de la tabla
// de secuencias (id_sequences) dentro de la misma transacción del insert.
type Brand struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name;size:255"`
}

func (Brand) TableName() string { return "brands" }

func (b *Brand) PrimaryKey() int64         { return b.ID }
func (b *Brand) AssignPrimaryKey(id int64) { b.ID = id }
