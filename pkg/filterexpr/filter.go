package filterexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// predicate is one `identifier <op> literal` term of a conjunction.
type predicate struct {
	field string
	op    Op
	value any
}

// CEL overload names mapped to the comparisons a filter may use.
var callOps = map[string]Op{
	"_==_":       OpEQ,
	"_>=_":       OpGTE,
	"_<=_":       OpLTE,
	"@in":        OpIN,
	"_in_":       OpIN,
	"startsWith": OpSW,
	"contains":   OpCT,
}

func (b *Binder) parseFilter(raw string) ([]predicate, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if len(b.schema.Filter) == 0 {
		return nil, errors.New("filter schema has no fields defined")
	}

	ast, issues := b.env.Parse(raw)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to convert AST: %w", err)
	}

	var terms []*exprpb.Expr
	if err := flattenAnd(parsed.GetExpr(), &terms); err != nil {
		return nil, err
	}

	preds := make([]predicate, 0, len(terms))
	for _, term := range terms {
		p, err := toPredicate(term)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}

// flattenAnd collects the operands of a (possibly nested) && chain. Any other logical operator is rejected.
func flattenAnd(expr *exprpb.Expr, out *[]*exprpb.Expr) error {
	if expr == nil {
		return errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		*out = append(*out, expr)
		return nil
	}
	switch call.GetFunction() {
	case "_&&_":
		if call.GetTarget() != nil || len(call.GetArgs()) < 2 {
			return errors.New("logical AND must have at least two operands")
		}
		for _, arg := range call.GetArgs() {
			if err := flattenAnd(arg, out); err != nil {
				return err
			}
		}
		return nil
	case "_||_", "_?_:_", "!_":
		return fmt.Errorf("logical operator %q is not supported; only AND is allowed", call.GetFunction())
	}
	*out = append(*out, expr)
	return nil
}

func toPredicate(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, errors.New("unsupported expression; expected comparison or function call")
	}
	op, ok := callOps[call.GetFunction()]
	if !ok {
		return predicate{}, fmt.Errorf("function %q is not supported", call.GetFunction())
	}

	ident, operand, err := operands(call, op)
	if err != nil {
		return predicate{}, err
	}
	name := ident.GetIdentExpr().GetName()
	if ident.GetIdentExpr() == nil || name == "" {
		return predicate{}, errors.New("left-hand side must be an identifier")
	}
	value, err := decodeLiteral(operand)
	if err != nil {
		return predicate{}, err
	}
	if op == OpSW || op == OpCT {
		if _, ok := value.(string); !ok {
			return predicate{}, fmt.Errorf("%s requires a string literal argument", op)
		}
	}
	return predicate{field: name, op: op, value: value}, nil
}

// operands returns the identifier and literal of a call. Member style calls (`name.startsWith("x")`,
// `["a"].@in(x)`) carry one side as the receiver.
func operands(call *exprpb.Expr_Call, op Op) (ident, operand *exprpb.Expr, err error) {
	args := call.GetArgs()
	if target := call.GetTarget(); target != nil {
		if len(args) != 1 {
			return nil, nil, fmt.Errorf("%s with receiver must have exactly one argument", op)
		}
		if op == OpIN {
			return args[0], target, nil
		}
		return target, args[0], nil
	}
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("operator %q expects two operands", string(op))
	}
	return args[0], args[1], nil
}
