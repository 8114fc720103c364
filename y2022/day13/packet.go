// Package day13 compares and sorts nested-list distress-signal packets.
package day13

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/13"

// Packet is either a non-negative integer or a list of packets.
type Packet struct {
	value  int
	items  []Packet
	isList bool
}

// Int returns an integer packet.
func Int(n int) Packet { return Packet{value: n} }

// List returns a list packet holding items.
func List(items ...Packet) Packet {
	if items == nil {
		items = []Packet{}
	}
	return Packet{items: items, isList: true}
}

// IsList reports whether p is a list.
func (p Packet) IsList() bool { return p.isList }

// Value returns the integer of a non-list packet.
func (p Packet) Value() int { return p.value }

// Items returns the elements of a list packet.
func (p Packet) Items() []Packet { return p.items }

// String renders p in the input literal syntax.
func (p Packet) String() string {
	var sb strings.Builder
	p.write(&sb)
	return sb.String()
}

func (p Packet) write(sb *strings.Builder) {
	if !p.isList {
		sb.WriteString(strconv.Itoa(p.value))
		return
	}
	sb.WriteByte('[')
	for i, it := range p.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		it.write(sb)
	}
	sb.WriteByte(']')
}

// Equal reports structural equality: same kinds, same values, same shape.
// Unlike Compare, 2 and [2] are not equal.
func Equal(a, b Packet) bool {
	if a.isList != b.isList {
		return false
	}
	if !a.isList {
		return a.value == b.value
	}
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !Equal(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

// Compare orders packets: integers numerically, lists lexicographically
// with the shorter list first on a common prefix, and a lone integer
// compared against a list as if it were a one-element list.
// It returns -1, 0 or +1.
func Compare(a, b Packet) int {
	switch {
	case !a.isList && !b.isList:
		switch {
		case a.value < b.value:
			return -1
		case a.value > b.value:
			return 1
		}
		return 0
	case !a.isList:
		return Compare(List(a), b)
	case !b.isList:
		return Compare(a, List(b))
	}

	for i := 0; i < len(a.items) && i < len(b.items); i++ {
		if c := Compare(a.items[i], b.items[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a.items) < len(b.items):
		return -1
	case len(a.items) > len(b.items):
		return 1
	}
	return 0
}

// Parse reads one list literal such as [1,[2,[]],10].
func Parse(s string) (Packet, error) {
	p := &parser{src: strings.TrimSpace(s)}
	if p.peek() != '[' {
		return Packet{}, puzzle.Malformed(kernel, "packet %q does not start with '['", s)
	}
	pkt, err := p.list()
	if err != nil {
		return Packet{}, err
	}
	if p.pos != len(p.src) {
		return Packet{}, puzzle.Malformed(kernel, "trailing %q after packet", p.src[p.pos:])
	}
	return pkt, nil
}

// parser is a recursive-descent reader over the literal grammar
//
//	list  = '[' [ item { ',' item } ] ']'
//	item  = list | digits
type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) list() (Packet, error) {
	p.pos++ // '['
	items := []Packet{}
	if p.peek() == ']' {
		p.pos++
		return List(items...), nil
	}
	for {
		it, err := p.item()
		if err != nil {
			return Packet{}, err
		}
		items = append(items, it)

		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return List(items...), nil
		case 0:
			return Packet{}, puzzle.Malformed(kernel, "unterminated list in %q", p.src)
		default:
			return Packet{}, puzzle.Malformed(kernel, "unexpected %q at offset %d", p.src[p.pos], p.pos)
		}
	}
}

func (p *parser) item() (Packet, error) {
	c := p.peek()
	switch {
	case c == '[':
		return p.list()
	case c >= '0' && c <= '9':
		start := p.pos
		for d := p.peek(); d >= '0' && d <= '9'; d = p.peek() {
			p.pos++
		}
		n, err := strconv.Atoi(p.src[start:p.pos])
		if err != nil {
			return Packet{}, puzzle.Malformed(kernel, "bad integer %q", p.src[start:p.pos])
		}
		return Int(n), nil
	case c == 0:
		return Packet{}, puzzle.Malformed(kernel, "unterminated list in %q", p.src)
	default:
		return Packet{}, puzzle.Malformed(kernel, "unexpected %q at offset %d", c, p.pos)
	}
}
