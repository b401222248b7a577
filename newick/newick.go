// Package newick parses and writes newick-format phylogenetic trees.
// Trees may be multifurcating; branch lengths and quoted labels are
// supported. Underscores in labels are kept as-is.
package newick

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"strconv"
	"strings"
)

// FormatError reports a tree file that cannot be parsed as newick.
type FormatError struct {
	File string
	Msg  string
}

func (e FormatError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("newick format error: %s", e.Msg)
	}
	return fmt.Sprintf("newick format error in %s: %s", e.File, e.Msg)
}

// Node is a node of a rooted tree. A node with no children is a leaf.
type Node struct {
	Name      string
	Length    float64
	HasLength bool
	Children  []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Leaves returns the leaf nodes of the subtree rooted at n, in the order
// they appear in the newick string.
func (n *Node) Leaves() []*Node {
	var ans []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		if node.IsLeaf() {
			ans = append(ans, node)
			return
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return ans
}

// LeafNames returns the leaf labels of the subtree rooted at n, in the
// order they appear in the newick string.
func (n *Node) LeafNames() []string {
	leaves := n.Leaves()
	ans := make([]string, len(leaves))
	for i := range leaves {
		ans[i] = leaves[i].Name
	}
	return ans
}

// ReadFile reads a single newick tree from filename. Leaf labels must be
// unique.
func ReadFile(filename string) (*Node, error) {
	lines := fileio.Read(filename)
	root, err := Parse(strings.Join(lines, ""))
	if err != nil {
		if fe, ok := err.(FormatError); ok {
			fe.File = filename
			return nil, fe
		}
		return nil, err
	}
	return root, nil
}

// Parse parses a single newick tree. Leaf labels must be unique.
func Parse(s string) (*Node, error) {
	p := parser{in: s}
	p.skipJunk()
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skipJunk()
	if p.pos >= len(p.in) || p.in[p.pos] != ';' {
		return nil, FormatError{Msg: "tree is not terminated by ';'"}
	}
	seen := make(map[string]bool)
	for _, name := range root.LeafNames() {
		if name == "" {
			return nil, FormatError{Msg: "tree contains an unlabeled leaf"}
		}
		if seen[name] {
			return nil, FormatError{Msg: fmt.Sprintf("duplicate leaf label \"%s\"", name)}
		}
		seen[name] = true
	}
	return root, nil
}

type parser struct {
	in  string
	pos int
}

// skipJunk advances past whitespace and [] comments.
func (p *parser) skipJunk() {
	for p.pos < len(p.in) {
		switch p.in[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case '[':
			for p.pos < len(p.in) && p.in[p.pos] != ']' {
				p.pos++
			}
			if p.pos < len(p.in) {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) node() (*Node, error) {
	p.skipJunk()
	n := new(Node)
	var err error
	if p.pos < len(p.in) && p.in[p.pos] == '(' {
		p.pos++
		for {
			var child *Node
			child, err = p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			p.skipJunk()
			if p.pos >= len(p.in) {
				return nil, FormatError{Msg: "unbalanced parentheses"}
			}
			if p.in[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.in[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, FormatError{Msg: fmt.Sprintf("unexpected character '%c'", p.in[p.pos])}
		}
	}
	n.Name, err = p.label()
	if err != nil {
		return nil, err
	}
	p.skipJunk()
	if p.pos < len(p.in) && p.in[p.pos] == ':' {
		p.pos++
		if err = p.length(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// label reads an optionally quoted label. Quoted labels escape the quote
// character by doubling it.
func (p *parser) label() (string, error) {
	p.skipJunk()
	if p.pos < len(p.in) && p.in[p.pos] == '\'' {
		p.pos++
		var s strings.Builder
		for {
			if p.pos >= len(p.in) {
				return "", FormatError{Msg: "unterminated quoted label"}
			}
			if p.in[p.pos] == '\'' {
				if p.pos+1 < len(p.in) && p.in[p.pos+1] == '\'' {
					s.WriteByte('\'')
					p.pos += 2
					continue
				}
				p.pos++
				return s.String(), nil
			}
			s.WriteByte(p.in[p.pos])
			p.pos++
		}
	}
	start := p.pos
	for p.pos < len(p.in) && strings.IndexByte("(),:;[] \t\n\r'", p.in[p.pos]) == -1 {
		p.pos++
	}
	return p.in[start:p.pos], nil
}

func (p *parser) length(n *Node) error {
	p.skipJunk()
	start := p.pos
	for p.pos < len(p.in) && strings.IndexByte("(),:;[] \t\n\r", p.in[p.pos]) == -1 {
		p.pos++
	}
	l, err := strconv.ParseFloat(p.in[start:p.pos], 64)
	if err != nil {
		return FormatError{Msg: fmt.Sprintf("bad branch length \"%s\"", p.in[start:p.pos])}
	}
	n.Length = l
	n.HasLength = true
	return nil
}

// String renders the subtree rooted at n as a newick string with a
// terminal ';'.
func (n *Node) String() string {
	var s strings.Builder
	writeNode(&s, n)
	s.WriteByte(';')
	return s.String()
}

func writeNode(s *strings.Builder, n *Node) {
	if !n.IsLeaf() {
		s.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				s.WriteByte(',')
			}
			writeNode(s, c)
		}
		s.WriteByte(')')
	}
	s.WriteString(quoteLabel(n.Name))
	if n.HasLength {
		s.WriteByte(':')
		s.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
}

func quoteLabel(name string) string {
	if name == "" || strings.IndexAny(name, "(),:;[] \t\n\r'") == -1 {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// WriteFile writes the tree to filename as a single newick line.
func WriteFile(filename string, root *Node) {
	out := fileio.EasyCreate(filename)
	_, err := fmt.Fprintf(out, "%s\n", root.String())
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}

// Prune returns the tree restricted to the leaves whose labels are in
// keep. Internal nodes left with a single child are suppressed and branch
// lengths along the collapsed path are summed. Returns nil if no leaf
// survives.
func Prune(root *Node, keep map[string]bool) *Node {
	return pruneNode(root, keep)
}

func pruneNode(n *Node, keep map[string]bool) *Node {
	if n.IsLeaf() {
		if keep[n.Name] {
			return n
		}
		return nil
	}
	var kept []*Node
	for _, c := range n.Children {
		if pc := pruneNode(c, keep); pc != nil {
			kept = append(kept, pc)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		// suppress the unifurcation
		child := kept[0]
		if n.HasLength {
			if child.HasLength {
				child.Length += n.Length
			} else {
				child.Length = n.Length
				child.HasLength = true
			}
		}
		return child
	default:
		n.Children = kept
		return n
	}
}
