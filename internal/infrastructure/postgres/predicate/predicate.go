// Package predicate compone cláusulas WHERE y ORDER BY parametrizadas para PostgreSQL.
//
// Los valores del usuario nunca se interpolan en el SQL: cada predicado los registra en Args
// y sólo escribe el placeholder ($1, $2, ...). Los nombres de columna provienen siempre del código.
package predicate

import (
	"fmt"
	"strconv"
	"strings"
)

// Args acumula los argumentos posicionales de una consulta en el orden de sus placeholders.
type Args struct {
	values []any
}

// Bind registra v y devuelve su placeholder.
func (a *Args) Bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// Values devuelve una copia de los argumentos registrados.
func (a *Args) Values() []any {
	out := make([]any, len(a.values))
	copy(out, a.values)
	return out
}

// Clone copia los argumentos para extender la consulta (p. ej. LIMIT/OFFSET) sin tocar el original.
func (a *Args) Clone() *Args {
	return &Args{values: a.Values()}
}

// Predicate escribe una condición SQL registrando sus valores en args.
// Un predicado nil no aporta nada a la cláusula.
type Predicate func(args *Args) string

// ContainsFold: la columna contiene value como subcadena, sin distinguir mayúsculas.
// value vacío (o sólo espacios) no genera condición.
func ContainsFold(column, value string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return func(args *Args) string {
		return fmt.Sprintf("UPPER(%s) LIKE UPPER(%s)", column, args.Bind("%"+value+"%"))
	}
}

// AllWordsContainFold separa value en palabras y exige que cada una aparezca en la columna.
// "John Smith" encuentra "SMITH, JOHN A" pero no "JOHN DOE".
func AllWordsContainFold(column, value string) Predicate {
	words := strings.Fields(value)
	switch len(words) {
	case 0:
		return nil
	case 1:
		return ContainsFold(column, words[0])
	}
	return func(args *Args) string {
		conds := make([]string, 0, len(words))
		for _, w := range words {
			conds = append(conds, ContainsFold(column, w)(args))
		}
		return "(" + strings.Join(conds, " AND ") + ")"
	}
}

// AtLeast: column >= value.
func AtLeast(column string, value any) Predicate {
	return func(args *Args) string {
		return fmt.Sprintf("%s >= %s", column, args.Bind(value))
	}
}

// EqualsText compara la representación textual de la columna, válida sea cual sea su tipo.
func EqualsText(column, value string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return func(args *Args) string {
		return fmt.Sprintf("%s::text = %s", column, args.Bind(value))
	}
}

// Where une los predicados con AND. Sin condiciones devuelve "".
func Where(args *Args, preds ...Predicate) string {
	var clauses []string
	for _, p := range preds {
		if p == nil {
			continue
		}
		if s := p(args); s != "" {
			clauses = append(clauses, s)
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(clauses, " AND ")
}
