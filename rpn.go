// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// rpnLexer tokenizes a postfix expression into numbers, identifiers and
// operators, using the same stateful-lexer-rules idiom as the rest of the
// retrieved corpus's parsers: a flat list of named regexes tried in order,
// longest/most-specific operators before the single-character fallback.
var rpnLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Op2", Pattern: `==|!=|<=|>=|&&|\|\|`},
		{Name: "Number", Pattern: `[0-9]+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[-+*/<>!?]`},
	},
})

var rpnSymbols = rpnLexer.Symbols()

// rpnNames inverts rpnSymbols (name -> TokenType) so the evaluator can map a
// token back to the rule name that produced it.
var rpnNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string, len(rpnSymbols))
	for name, typ := range rpnSymbols {
		names[typ] = name
	}
	return names
}()

// RPNEnv binds identifiers used in an RPN expression to diagram nodes for a
// single Manager. Declaring a range for a label (DeclareRange) lets Eval
// auto-register that identifier, the first time it is seen, as a
// multi-valued variable taking exactly those values; an identifier with
// neither an explicit binding nor a declared range is an ErrUnknownVariable.
type RPNEnv struct {
	mgr    *Manager
	vars   map[string]Node
	ranges map[string][]int64
}

// NewRPNEnv returns an empty evaluation environment over mgr.
func NewRPNEnv(mgr *Manager) *RPNEnv {
	return &RPNEnv{
		mgr:    mgr,
		vars:   make(map[string]Node),
		ranges: make(map[string][]int64),
	}
}

// Bind associates label with an already-built node, e.g. the result of
// Manager.Var or Manager.DefVar, or of compiling a FaultTree.
func (e *RPNEnv) Bind(label string, n Node) {
	e.vars[label] = n
}

// DeclareRange lets Eval auto-register label, on first use, as a
// multi-valued variable over exactly these values.
func (e *RPNEnv) DeclareRange(label string, values []int64) {
	e.ranges[label] = values
}

func (e *RPNEnv) resolve(label string) (Node, error) {
	if n, ok := e.vars[label]; ok {
		return n, nil
	}
	if values, ok := e.ranges[label]; ok {
		n, err := e.mgr.DefVar(label, values)
		if err != nil {
			return Node{}, err
		}
		e.vars[label] = n
		return n, nil
	}
	return Node{}, wrapf(ErrUnknownVariable, "%q", label)
}

// Eval tokenizes and evaluates a postfix expression over this environment's
// Manager, returning the resulting diagram node. Recognised operators are
// the arithmetic +, -, *, / (integer-valued operands), the comparisons ==,
// !=, <, <=, >, >= (integer-valued operands, Boolean result), the Boolean
// connectives && and || and the unary !, and the ternary "cond t f ?"
// if-then-else bridging operator. The identifiers "true" and "false" are
// reserved literals for Manager.One and Manager.Zero, not ordinary variable
// names.
func (e *RPNEnv) Eval(expr string) (Node, error) {
	toks, err := tokenizeRPN(expr)
	if err != nil {
		return Node{}, err
	}

	var stack []Node
	pop := func() (Node, error) {
		if len(stack) == 0 {
			return Node{}, wrapf(ErrInvalidExpression, "stack underflow")
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, nil
	}

	for _, t := range toks {
		switch rpnNames[t.Type] {
		case "Number":
			v, perr := strconv.ParseInt(t.Value, 10, 64)
			if perr != nil {
				return Node{}, wrapf(ErrInvalidExpression, "bad integer literal %q", t.Value)
			}
			stack = append(stack, e.mgr.Value(v))
		case "Ident":
			switch t.Value {
			case "true":
				stack = append(stack, e.mgr.One())
				continue
			case "false":
				stack = append(stack, e.mgr.Zero())
				continue
			}
			n, rerr := e.resolve(t.Value)
			if rerr != nil {
				return Node{}, rerr
			}
			stack = append(stack, n)
		default:
			n, oerr := e.applyOp(t.Value, pop)
			if oerr != nil {
				return Node{}, oerr
			}
			stack = append(stack, n)
		}
	}

	if len(stack) != 1 {
		return Node{}, wrapf(ErrInvalidExpression, "expression left %d values on the stack", len(stack))
	}
	return stack[0], nil
}

func (e *RPNEnv) applyOp(op string, pop func() (Node, error)) (Node, error) {
	if op == "!" {
		a, err := pop()
		if err != nil {
			return Node{}, err
		}
		return e.mgr.Not(a)
	}
	if op == "?" {
		f, err := pop()
		if err != nil {
			return Node{}, err
		}
		t, err := pop()
		if err != nil {
			return Node{}, err
		}
		c, err := pop()
		if err != nil {
			return Node{}, err
		}
		return e.mgr.IfElse(c, t, f)
	}

	b, err := pop()
	if err != nil {
		return Node{}, err
	}
	a, err := pop()
	if err != nil {
		return Node{}, err
	}
	switch op {
	case "+":
		return e.mgr.Add(a, b)
	case "-":
		return e.mgr.Sub(a, b)
	case "*":
		return e.mgr.Mul(a, b)
	case "/":
		return e.mgr.Div(a, b)
	case "==":
		return e.mgr.Eq(a, b)
	case "!=":
		return e.mgr.Neq(a, b)
	case "<":
		return e.mgr.Lt(a, b)
	case "<=":
		return e.mgr.Lte(a, b)
	case ">":
		return e.mgr.Gt(a, b)
	case ">=":
		return e.mgr.Gte(a, b)
	case "&&":
		return e.mgr.And(a, b)
	case "||":
		return e.mgr.Or(a, b)
	}
	return Node{}, wrapf(ErrInvalidExpression, "unknown operator %q", op)
}

func tokenizeRPN(expr string) ([]lexer.Token, error) {
	lex, err := rpnLexer.LexString("", expr)
	if err != nil {
		return nil, wrapf(ErrInvalidExpression, "%v", err)
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, wrapf(ErrInvalidExpression, "%v", err)
	}
	whitespace := rpnLexer.Symbols()["Whitespace"]
	out := make([]lexer.Token, 0, len(all))
	for _, t := range all {
		if t.EOF() || t.Type == whitespace {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
