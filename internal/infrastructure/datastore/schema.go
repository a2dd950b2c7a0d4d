package datastore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/multistore-api/internal/domain"
)

// Schema describe lo que un store debe contener: los modelos GORM de su grupo y,
// si los hay, los nombres de secuencia de tabla que usan sus IDs.
type Schema struct {
	Models    []any
	Sequences []string
}

func (s Schema) models() []any {
	models := append([]any(nil), s.Models...)
	if len(s.Sequences) > 0 {
		models = append(models, &idSequence{})
	}
	return models
}

// Reconcile aplica la política ddlAuto. Se ejecuta una vez, antes de entregar el store.
func Reconcile(ctx context.Context, db *gorm.DB, policy DDLAuto, s Schema) error {
	db = db.WithContext(ctx)
	switch policy {
	case DDLNone:
		return nil
	case DDLValidate:
		return validateSchema(db, s)
	case DDLCreate, DDLCreateDrop:
		if err := dropSchema(db, s); err != nil {
			return err
		}
	case DDLUpdate:
	default:
		return fmt.Errorf("%w: ddlAuto %q", domain.ErrConfiguration, policy)
	}

	if err := db.AutoMigrate(s.models()...); err != nil {
		return fmt.Errorf("%w: migrar esquema: %w", domain.ErrPersistence, err)
	}
	for _, name := range s.Sequences {
		seq := idSequence{}
		err := db.Where(idSequence{SequenceName: name}).
			Attrs(idSequence{NextVal: 1}).
			FirstOrCreate(&seq).Error
		if err != nil {
			return fmt.Errorf("%w: sembrar secuencia %s: %w", domain.ErrPersistence, name, err)
		}
	}
	return nil
}

// Teardown elimina el esquema al cerrar el store cuando la política es create-drop.
func Teardown(ctx context.Context, db *gorm.DB, policy DDLAuto, s Schema) error {
	if policy != DDLCreateDrop {
		return nil
	}
	return dropSchema(db.WithContext(ctx), s)
}

func dropSchema(db *gorm.DB, s Schema) error {
	models := s.models()
	// Orden inverso al de creación.
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("%w: eliminar tabla: %w", domain.ErrPersistence, err)
		}
	}
	return nil
}

// validateSchema exige que cada tabla y columna de los modelos exista. No modifica nada.
func validateSchema(db *gorm.DB, s Schema) error {
	m := db.Migrator()
	for _, model := range s.models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("%w: modelo %T: %v", domain.ErrConfiguration, model, err)
		}
		table := stmt.Schema.Table
		if !m.HasTable(model) {
			return fmt.Errorf("%w: tabla %s no existe", domain.ErrConfiguration, table)
		}
		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			if !m.HasColumn(model, field.DBName) {
				return fmt.Errorf("%w: columna %s.%s no existe", domain.ErrConfiguration, table, field.DBName)
			}
		}
	}
	return nil
}
