package predicate

import "strings"

const (
	Asc  = "ASC"
	Desc = "DESC"
)

// Sort lista blanca de columnas ordenables. Las claves desconocidas caen en Default sin error.
type Sort struct {
	Columns map[string]string // clave pública -> expresión SQL
	Default string
}

// Column devuelve la columna para key. La comparación es exacta: "AMOUNT" no es "amount".
func (s Sort) Column(key string) string {
	if col, ok := s.Columns[key]; ok {
		return col
	}
	return s.Default
}

// OrderBy devuelve "ORDER BY <columna> <dirección>".
func (s Sort) OrderBy(key, order string) string {
	return "ORDER BY " + s.Column(key) + " " + Direction(order)
}

// Direction normaliza el sentido: "desc" (o vacío) es DESC; cualquier otro valor es ASC.
func Direction(order string) string {
	order = strings.TrimSpace(order)
	if order == "" || strings.EqualFold(order, "desc") {
		return Desc
	}
	return Asc
}
