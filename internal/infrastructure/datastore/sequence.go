package datastore

import (
	"fmt"

	"gorm.io/gorm"
)

// idSequence fila de la tabla de secuencias usada por entidades con IDs generados por tabla.
type idSequence struct {
	SequenceName string `gorm:"column:sequence_name;primaryKey;size:255"`
	NextVal      int64  `gorm:"column:next_val;not null"`
}

func (idSequence) TableName() string { return "id_sequences" }

// NextID reserva el siguiente valor de la secuencia name. Debe llamarse dentro de la
// transacción del insert: el UPDATE bloquea la fila hasta el commit, así que dos inserts
// concurrentes nunca obtienen el mismo valor.
func NextID(tx *gorm.DB, name string) (int64, error) {
	res := tx.Model(&idSequence{}).
		Where("sequence_name = ?", name).
		UpdateColumn("next_val", gorm.Expr("next_val + ?", 1))
	if res.Error != nil {
		return 0, fmt.Errorf("avanzar secuencia %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		// Sin fila sembrada (ddlAuto none/validate): se crea al vuelo.
		if err := tx.Create(&idSequence{SequenceName: name, NextVal: 2}).Error; err != nil {
			return 0, fmt.Errorf("crear secuencia %s: %w", name, err)
		}
		return 1, nil
	}
	var seq idSequence
	if err := tx.Where("sequence_name = ?", name).Take(&seq).Error; err != nil {
		return 0, fmt.Errorf("leer secuencia %s: %w", name, err)
	}
	return seq.NextVal - 1, nil
}
