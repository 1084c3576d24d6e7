package exprc

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. The only two
// implementations are NumberNode and BinaryOpNode. Trees are immutable once
// built; each node is owned exclusively by its parent.
type Node interface {
	// String renders the subtree as a fully parenthesized expression.
	String() string

	write(b *strings.Builder)
	dump(b *strings.Builder, indent string)
}

// NumberNode is a leaf holding one numeric literal.
type NumberNode struct {
	Value float64
}

// BinaryOpNode applies an operator to exactly two operands. Both children
// are always present.
type BinaryOpNode struct {
	// Op is the operator symbol, one of + - * / ^.
	Op    string
	Left  Node
	Right Node
}

func (n *NumberNode) String() string {
	return formatNum(n.Value)
}

func (n *BinaryOpNode) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *NumberNode) write(b *strings.Builder) {
	b.WriteString(formatNum(n.Value))
}

func (n *BinaryOpNode) write(b *strings.Builder) {
	b.WriteByte('(')
	n.Left.write(b)
	b.WriteByte(' ')
	b.WriteString(n.Op)
	b.WriteByte(' ')
	n.Right.write(b)
	b.WriteByte(')')
}

// Dump renders the tree one node per line with children indented under
// their parent.
func Dump(n Node) string {
	var b strings.Builder
	n.dump(&b, "")
	return b.String()
}

func (n *NumberNode) dump(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString("Number(")
	b.WriteString(formatNum(n.Value))
	b.WriteString(")\n")
}

func (n *BinaryOpNode) dump(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString("Op(")
	b.WriteString(n.Op)
	b.WriteString(")\n")
	n.Left.dump(b, indent+"  ")
	n.Right.dump(b, indent+"  ")
}

// MarshalJSON renders the leaf as {"type": "NumberNode", "value": v}.
func (n *NumberNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string  `json:"type"`
		Value float64 `json:"value"`
	}{"NumberNode", n.Value})
}

// MarshalJSON renders the node as
// {"type": "BinOpNode", "op": o, "left": ..., "right": ...}.
func (n *BinaryOpNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Op    string `json:"op"`
		Left  Node   `json:"left"`
		Right Node   `json:"right"`
	}{"BinOpNode", n.Op, n.Left, n.Right})
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
