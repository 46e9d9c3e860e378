package modsexp

import (
	"fmt"
	"strings"
)

// Node is one named list in the parsed tree. The name is the list's first
// atom and never changes after parsing. Items holds the remaining atoms and
// Children the nested lists, each in source order; the two sequences are
// kept separate.
type Node struct {
	name     string
	Items    []string
	Children []*Node
}

// Name returns the node's tag.
func (n *Node) Name() string {
	return n.name
}

// Item returns the atom at index, or false if the node has fewer items.
func (n *Node) Item(index int) (string, bool) {
	if index < 0 || index >= len(n.Items) {
		return "", false
	}
	return n.Items[index], true
}

// Parse reads one root list from data. A root that does not begin with '('
// or yields no name is ErrMalformedNode; input ending with lists still open
// is ErrUnexpectedEOF. Anything after the root's closing paren is ignored.
func Parse(data []byte) (*Node, error) {
	sc := NewScanner(data)

	res, err := sc.Scan()
	if err != nil {
		return nil, err
	}
	if res.Kind == ScanEndOfInput {
		return nil, fmt.Errorf("%w: empty input", ErrUnexpectedEOF)
	}
	if res.Kind != ScanListOpen {
		return nil, fmt.Errorf("%w: input does not begin with a list", ErrMalformedNode)
	}

	return parseList(sc)
}

// frame is an in-progress list. Lists are built with an explicit stack
// instead of call-stack recursion so parse depth never threatens the stack
// on deeply nested input.
type frame struct {
	named    bool
	name     string
	items    []string
	children []*Node
}

func parseList(sc *Scanner) (*Node, error) {
	stack := []*frame{{}}

	for {
		res, err := sc.Scan()
		if err != nil {
			return nil, err
		}

		switch res.Kind {
		case ScanListOpen:
			stack = append(stack, &frame{})

		case ScanListClose:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			// A list that closed without a name is dropped, along
			// with anything parsed inside it.
			var done *Node
			if top.named {
				done = &Node{name: top.name, Items: top.items, Children: top.children}
			}

			if len(stack) == 0 {
				if done == nil {
					return nil, fmt.Errorf("%w: list closed before a name was read", ErrMalformedNode)
				}
				return done, nil
			}
			if done != nil {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, done)
			}

		case ScanToken:
			// The first atom of a list is its name; later atoms are
			// items. Nested lists seen before the name still become
			// children of this list.
			top := stack[len(stack)-1]
			if !top.named {
				top.named = true
				top.name = res.Text
			} else {
				top.items = append(top.items, res.Text)
			}

		case ScanEndOfInput:
			return nil, fmt.Errorf("%w: %d unclosed list(s) at offset %d", ErrUnexpectedEOF, len(stack), sc.Pos())
		}
	}
}

// FindNode returns the first node tagged tag in depth-first pre-order,
// starting with n itself. The second result distinguishes "not found" from
// any real node.
func (n *Node) FindNode(tag string) (*Node, bool) {
	if n.name == tag {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.FindNode(tag); ok {
			return found, true
		}
	}
	return nil, false
}

// FindAllNodes returns every node tagged tag, in depth-first pre-order. The
// search also descends into matching nodes, so the result is exhaustive even
// when tags nest. A tree with no matches yields an empty slice.
func (n *Node) FindAllNodes(tag string) []*Node {
	var result []*Node
	if n.name == tag {
		result = append(result, n)
	}
	for _, child := range n.Children {
		result = append(result, child.FindAllNodes(tag)...)
	}
	return result
}

// String renders the node as an indented S-expression, for debug output.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteByte('(')
	b.WriteString(n.name)
	for _, item := range n.Items {
		b.WriteByte(' ')
		b.WriteString(item)
	}
	if len(n.Children) == 0 {
		b.WriteByte(')')
		return
	}
	for _, child := range n.Children {
		b.WriteByte('\n')
		child.write(b, depth+1)
	}
	b.WriteByte(')')
}
