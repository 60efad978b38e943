package expr

import (
	"fmt"
	"strconv"
)

// Node is a generic form of an expression tree, suitable for encoding with
// encoding/json or gopkg.in/yaml.v3.
type Node struct {
	// Kind is one of "var", "num", "bin" and "trig".
	Kind string `json:"kind" yaml:"kind"`
	// Op is the operator of a "bin" node or the function of a "trig" node.
	Op string `json:"op,omitempty" yaml:"op,omitempty"`
	// Value is the printed value of a "num" node.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Args are the operands of a "bin" or "trig" node.
	Args []*Node `json:"args,omitempty" yaml:"args,omitempty"`
}

var opNames = [...]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
	OpPow: "pow",
	OpLog: "log",
}

// ToNode converts an expression to a Node tree.
func ToNode(e Expr) *Node {
	switch e := e.(type) {
	case Var:
		return &Node{Kind: "var"}
	case Num:
		return &Node{Kind: "num", Value: e.String()}
	case *Bin:
		return &Node{Kind: "bin", Op: opNames[e.Op],
			Args: []*Node{ToNode(e.A), ToNode(e.B)}}
	case *Trig:
		return &Node{Kind: "trig", Op: e.Fn.String(),
			Args: []*Node{ToNode(e.Arg)}}
	}
	panic("expr: unknown expression")
}

// FromNode converts a Node tree back to an expression.
func FromNode(n *Node) (Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("missing node")
	}
	switch n.Kind {
	case "var":
		return X, nil
	case "num":
		if n.Value == "e" {
			return E, nil
		}
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", n.Value)
		}
		return Num(v), nil
	case "bin":
		op, ok := lookup(opNames[:], n.Op)
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", n.Op)
		}
		args, err := fromNodes(n.Args, 2)
		if err != nil {
			return nil, err
		}
		return bin(Op(op), args[0], args[1]), nil
	case "trig":
		fn, ok := lookup(trigNames[:], n.Op)
		if !ok {
			return nil, fmt.Errorf("unknown function %q", n.Op)
		}
		args, err := fromNodes(n.Args, 1)
		if err != nil {
			return nil, err
		}
		return Apply(TrigFn(fn), args[0]), nil
	}
	return nil, fmt.Errorf("unknown node kind %q", n.Kind)
}

func fromNodes(nodes []*Node, want int) ([]Expr, error) {
	if len(nodes) != want {
		return nil, fmt.Errorf("want %d args, got %d", want, len(nodes))
	}
	exprs := make([]Expr, len(nodes))
	for i, n := range nodes {
		e, err := FromNode(n)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return exprs, nil
}

func lookup(names []string, name string) (int, bool) {
	for i, s := range names {
		if s == name {
			return i, true
		}
	}
	return 0, false
}
