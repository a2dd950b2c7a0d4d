package datastore

import (
	"fmt"
	"strings"

	"github.com/jhoicas/multistore-api/internal/domain"
)

// DDLAuto política de reconciliación de esquema aplicada una sola vez al registrar el store.
type DDLAuto string

const (
	DDLValidate   DDLAuto = "validate"
	DDLUpdate     DDLAuto = "update"
	DDLCreate     DDLAuto = "create"
	DDLCreateDrop DDLAuto = "create-drop"
	DDLNone       DDLAuto = "none"
)

// ParseDDLAuto valida el valor configurado. Vacío equivale a none.
func ParseDDLAuto(s string) (DDLAuto, error) {
	p := DDLAuto(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return DDLNone, nil
	case DDLValidate, DDLUpdate, DDLCreate, DDLCreateDrop, DDLNone:
		return p, nil
	}
	return "", fmt.Errorf("%w: ddlAuto %q inválido (validate, update, create, create-drop, none)", domain.ErrConfiguration, s)
}

// Mutates informa si la política modifica el esquema en el arranque.
func (p DDLAuto) Mutates() bool {
	return p == DDLUpdate || p == DDLCreate || p == DDLCreateDrop
}
