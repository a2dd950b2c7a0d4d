package entity

// Grupos de entidades: cada uno se persiste exclusivamente en su propio store.
const (
	GroupUser    = "user"
	GroupCompany = "company"
	GroupBrand   = "brand"
)

// Groups devuelve los grupos conocidos en orden de arranque.
func Groups() []string {
	return []string{GroupUser, GroupCompany, GroupBrand}
}
