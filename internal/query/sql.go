package query

import (
	"fmt"
	"strings"
)

const tagExistsClause = "EXISTS (SELECT 1 FROM transaction_tags WHERE transaction_tags.transaction_id = transactions.id AND %s)"

// ToSQL lowers a predicate tree to a parameterized WHERE fragment. The
// generated SQL sticks to LOWER/LIKE/EXISTS so it evaluates identically on
// PostgreSQL and on the SQLite test backend.
func ToSQL(p Predicate) (string, []any) {
	switch node := p.(type) {
	case And:
		return joinOperands(node.Operands, " AND ", "1=1")
	case Or:
		return joinOperands(node.Operands, " OR ", "1=0")
	case Not:
		clause, args := ToSQL(node.Operand)
		return fmt.Sprintf("NOT (%s)", clause), args
	case TextMatch:
		pattern := "%" + escapeLike(strings.ToLower(node.Term)) + "%"
		if node.Field == FieldTag {
			clause := fmt.Sprintf(tagExistsClause, `LOWER(transaction_tags.tag) LIKE ? ESCAPE '\'`)
			return clause, []any{pattern}
		}
		return `LOWER(transactions.description) LIKE ? ESCAPE '\'`, []any{pattern}
	case HasTag:
		clause := fmt.Sprintf(tagExistsClause, "transaction_tags.tag = ?")
		return clause, []any{strings.ToLower(strings.TrimSpace(node.Tag))}
	case OwnerEquals:
		return "transactions.owner_id = ?", []any{node.OwnerID}
	default:
		return "1=1", nil
	}
}

func joinOperands(operands []Predicate, separator, empty string) (string, []any) {
	if len(operands) == 0 {
		return empty, nil
	}

	clauses := make([]string, 0, len(operands))
	var args []any

	for _, op := range operands {
		clause, opArgs := ToSQL(op)
		clauses = append(clauses, "("+clause+")")
		args = append(args, opArgs...)
	}

	return strings.Join(clauses, separator), args
}

// escapeLike escapes the LIKE metacharacters in a literal search term.
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return term
}
