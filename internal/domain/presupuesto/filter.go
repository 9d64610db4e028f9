package presupuesto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dcherreria/taller-api/internal/domain/entity"
)

// Filtrar aplica al listado la pestaña de estado y la búsqueda por cliente.
// status vacío = todas las pestañas; q vacío = sin búsqueda. La comparación de
// cliente no distingue mayúsculas ni tildes ("garcia" encuentra a "García").
func Filtrar(list []*entity.Presupuesto, status entity.Status, q string) []*entity.Presupuesto {
	needle := normalizar(q)
	out := make([]*entity.Presupuesto, 0, len(list))
	for _, p := range list {
		if status != "" && p.Status != status {
			continue
		}
		if needle != "" && !strings.Contains(normalizar(p.Cliente), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// quitarTildes descompone a NFD y elimina las marcas diacríticas.
var quitarTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizar(s string) string {
	plano, _, err := transform.String(quitarTildes, s)
	if err != nil {
		plano = s
	}
	return strings.ToLower(strings.TrimSpace(plano))
}
