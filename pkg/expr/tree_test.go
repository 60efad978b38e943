package expr

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestToNode(t *testing.T) {
	got := ToNode(Mul(Num(2), Apply(Sin, X)))
	want := &Node{Kind: "bin", Op: "mul", Args: []*Node{
		{Kind: "num", Value: "2"},
		{Kind: "trig", Op: "sin", Args: []*Node{{Kind: "var"}}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToNode (-want +got):\n%s", diff)
	}
}

func TestNode_JSON(t *testing.T) {
	b, err := json.Marshal(ToNode(Add(X, E)))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"bin","op":"add","args":[{"kind":"var"},{"kind":"num","value":"e"}]}`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

var treeExprs = []Expr{
	X,
	Num(-0.25),
	E,
	Div(Sub(X, Num(1)), Pow(X, Num(2))),
	Log(Num(2), Apply(Csc, X)),
	Ln(Apply(Tan, Mul(Num(3), X))),
}

func TestFromNode_RoundTrip(t *testing.T) {
	for _, e := range treeExprs {
		got, err := FromNode(ToNode(e))
		if err != nil {
			t.Errorf("FromNode(ToNode(%v)) -> error %v", e, err)
			continue
		}
		if !Equal(got, e) {
			t.Errorf("FromNode(ToNode(%v)) -> %v", e, got)
		}
	}
}

func TestFromNode_YAML(t *testing.T) {
	const src = `
kind: bin
op: pow
args:
  - kind: var
  - kind: num
    value: "3"
`
	var n Node
	if err := yaml.Unmarshal([]byte(src), &n); err != nil {
		t.Fatal(err)
	}
	got, err := FromNode(&n)
	if err != nil {
		t.Fatal(err)
	}
	if want := Pow(X, Num(3)); !Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromNode_Errors(t *testing.T) {
	for _, n := range []*Node{
		nil,
		{Kind: "matrix"},
		{Kind: "num", Value: "one"},
		{Kind: "bin", Op: "mod", Args: []*Node{{Kind: "var"}, {Kind: "var"}}},
		{Kind: "bin", Op: "add", Args: []*Node{{Kind: "var"}}},
		{Kind: "trig", Op: "sinh", Args: []*Node{{Kind: "var"}}},
		{Kind: "trig", Op: "sin", Args: []*Node{{Kind: "bogus"}}},
	} {
		if e, err := FromNode(n); err == nil {
			t.Errorf("FromNode(%+v) -> %v, want error", n, e)
		}
	}
}
