package orientation

import (
	"fmt"
	"strings"
)

// Kind selects one of the four growth directions.
type Kind int

const (
	TopBottom Kind = iota + 1
	BottomTop
	LeftRight
	RightLeft
)

// Layout names as used in configuration files and on the command line.
const (
	NameDown  = "down"
	NameUp    = "up"
	NameRight = "right"
	NameLeft  = "left"
)

var kindNames = map[Kind]string{
	TopBottom: NameDown,
	BottomTop: NameUp,
	LeftRight: NameRight,
	RightLeft: NameLeft,
}

// Kinds lists all valid kinds in a stable order.
var Kinds = []Kind{TopBottom, BottomTop, LeftRight, RightLeft}

// ParseKind maps a layout name ("down", "up", "right", "left") to its kind.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown orientation %q (must be one of: down, up, right, left)", s)
}

// String returns the layout name of k.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the four defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// IsHorizontal reports whether generations grow along the x axis.
func (k Kind) IsHorizontal() bool {
	return k == LeftRight || k == RightLeft
}

// Describe returns a short human readable description.
func (k Kind) Describe() string {
	switch k {
	case TopBottom:
		return "top to bottom"
	case BottomTop:
		return "bottom to top"
	case LeftRight:
		return "left to right"
	case RightLeft:
		return "right to left"
	}
	return k.String()
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid orientation kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
