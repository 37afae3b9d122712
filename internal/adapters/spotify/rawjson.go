package spotify

import (
	"bytes"
	"encoding/json"

	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

// Node is an undecoded JSON value from a catalog response. Nodes are decoded
// one level at a time, so nested payloads are only parsed when located.
type Node []byte

// UnmarshalJSON keeps the raw bytes, like json.RawMessage.
func (n *Node) UnmarshalJSON(data []byte) error {
	*n = append((*n)[0:0], data...)
	return nil
}

// MarshalJSON returns the raw bytes unchanged.
func (n Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return n, nil
}

// Kind reports the JSON type of the node: object, array, string, number,
// bool or null. A zero-length node reports "".
func (n Node) Kind() string {
	trimmed := bytes.TrimSpace(n)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// IsNull is true for JSON null and for nodes that were never set.
func (n Node) IsNull() bool {
	k := n.Kind()
	return k == "" || k == "null"
}

// Kind is the node kind a lookup expects to find.
type Kind int

const (
	KindObject Kind = iota + 1
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Status tags the outcome of a lookup.
type Status int

const (
	Found Status = iota
	Absent
	WrongShape
)

// Located is the tagged result of Locate.
type Located struct {
	Status Status
	Node   Node
	// Path is the full path on success or absence, and the prefix that held
	// the unexpected node on WrongShape.
	Path []string

	want string
	got  string
}

// Err converts an Absent or WrongShape result into a *ports.ShapeError.
func (l Located) Err() error {
	if l.Status == Found {
		return nil
	}
	return &ports.ShapeError{Path: l.Path, Want: l.want, Got: l.got}
}

// Object decodes the located object one level deep.
func (l Located) Object() (map[string]Node, error) {
	if err := l.expect(KindObject); err != nil {
		return nil, err
	}
	var fields map[string]Node
	if err := json.Unmarshal(l.Node, &fields); err != nil {
		return nil, &ports.ShapeError{Path: l.Path, Want: "object", Got: "malformed object"}
	}
	return fields, nil
}

// Array decodes the located array one level deep.
func (l Located) Array() ([]Node, error) {
	if err := l.expect(KindArray); err != nil {
		return nil, err
	}
	elems := []Node{}
	if err := json.Unmarshal(l.Node, &elems); err != nil {
		return nil, &ports.ShapeError{Path: l.Path, Want: "array", Got: "malformed array"}
	}
	return elems, nil
}

func (l Located) expect(kind Kind) error {
	if err := l.Err(); err != nil {
		return err
	}
	if got := l.Node.Kind(); got != kind.String() {
		return &ports.ShapeError{Path: l.Path, Want: kind.String(), Got: got}
	}
	return nil
}

// Parse checks that body is a JSON document and returns its root node.
func Parse(body []byte) (Node, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &ports.ShapeError{Want: "JSON document", Got: "empty body"}
	}
	if !json.Valid(trimmed) {
		return nil, &ports.ShapeError{Want: "JSON document", Got: "malformed JSON"}
	}
	return Node(trimmed), nil
}

// Locate walks path through nested objects starting at root and checks that
// the final node has the wanted kind. A missing key or a JSON null anywhere
// along the path yields Absent; a node of the wrong kind yields WrongShape.
func Locate(root Node, want Kind, path ...string) Located {
	full := append([]string(nil), path...)
	cur := root
	for i, key := range path {
		if cur.IsNull() {
			return Located{Status: Absent, Path: full, want: want.String()}
		}
		if kind := cur.Kind(); kind != "object" {
			return Located{Status: WrongShape, Path: full[:i], want: "object", got: kind}
		}
		var fields map[string]Node
		if err := json.Unmarshal(cur, &fields); err != nil {
			return Located{Status: WrongShape, Path: full[:i], want: "object", got: "malformed object"}
		}
		next, ok := fields[key]
		if !ok {
			return Located{Status: Absent, Path: full, want: want.String()}
		}
		cur = next
	}

	if cur.IsNull() {
		return Located{Status: Absent, Path: full, want: want.String()}
	}
	if kind := cur.Kind(); kind != want.String() {
		return Located{Status: WrongShape, Path: full, want: want.String(), got: kind}
	}
	return Located{Status: Found, Node: cur, Path: full, want: want.String()}
}
