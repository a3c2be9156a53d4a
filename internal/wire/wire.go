// Package wire implements the binary interchange format described in
// spec.md §6: tag bytes 0-4 for Const|Var|Lam|Pi|App, sort bytes 0/1 for
// Star/Box, little-endian uint64 disambiguation indices, and
// length-prefixed UTF-8 text. This interface lives outside the core —
// internal/term neither imports nor is aware of this package.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/purelang/coc/internal/term"
)

const (
	tagConst byte = 0
	tagVar   byte = 1
	tagLam   byte = 2
	tagPi    byte = 3
	tagApp   byte = 4
)

const (
	sortStar byte = 0
	sortBox  byte = 1
)

// Encode serializes e to the stable wire format.
func Encode(e term.Expr) []byte {
	var buf []byte
	return encode(buf, e)
}

func encode(buf []byte, e term.Expr) []byte {
	switch x := e.(type) {
	case term.ConstExpr:
		buf = append(buf, tagConst)
		return append(buf, constByte(x.C))
	case term.VarExpr:
		buf = append(buf, tagVar)
		buf = appendString(buf, x.V.Name)
		return appendUint64(buf, uint64(x.V.Index))
	case term.Lam:
		buf = append(buf, tagLam)
		buf = appendString(buf, x.Name)
		buf = encode(buf, x.Domain)
		return encode(buf, x.Body)
	case term.Pi:
		buf = append(buf, tagPi)
		buf = appendString(buf, x.Name)
		buf = encode(buf, x.Domain)
		return encode(buf, x.Codomain)
	case term.App:
		buf = append(buf, tagApp)
		buf = encode(buf, x.Fun)
		return encode(buf, x.Arg)
	default:
		panic("wire: unknown Expr shape")
	}
}

func constByte(c term.Const) byte {
	if c == term.Box {
		return sortBox
	}
	return sortStar
}

func appendString(buf []byte, s string) []byte {
	buf = appendUint64(buf, uint64(len(s)))
	return append(buf, s...)
}

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// Decode parses the wire format produced by Encode. It reports an error
// rather than panicking on truncated or malformed input, since unlike
// the core's own operations this boundary does process untrusted bytes.
func Decode(data []byte) (term.Expr, error) {
	e, rest, err := decode(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("wire: %d trailing bytes after a complete expression", len(rest))
	}
	return e, nil
}

func decode(data []byte) (term.Expr, []byte, error) {
	if len(data) < 1 {
		return nil, nil, fmt.Errorf("wire: unexpected end of input reading tag")
	}
	tag, rest := data[0], data[1:]
	switch tag {
	case tagConst:
		if len(rest) < 1 {
			return nil, nil, fmt.Errorf("wire: unexpected end of input reading sort")
		}
		sort, rest := rest[0], rest[1:]
		switch sort {
		case sortStar:
			return term.NewConst(term.Star), rest, nil
		case sortBox:
			return term.NewConst(term.Box), rest, nil
		default:
			return nil, nil, fmt.Errorf("wire: invalid sort byte %d", sort)
		}
	case tagVar:
		name, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		index, rest, err := readUint64(rest)
		if err != nil {
			return nil, nil, err
		}
		if int(index) < 0 || uint64(int(index)) != index {
			return nil, nil, fmt.Errorf("wire: variable index %d out of range", index)
		}
		return term.NewVar(name, int(index)), rest, nil
	case tagLam:
		name, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		dom, rest, err := decode(rest)
		if err != nil {
			return nil, nil, err
		}
		body, rest, err := decode(rest)
		if err != nil {
			return nil, nil, err
		}
		return term.NewLam(name, dom, body), rest, nil
	case tagPi:
		name, rest, err := readString(rest)
		if err != nil {
			return nil, nil, err
		}
		dom, rest, err := decode(rest)
		if err != nil {
			return nil, nil, err
		}
		cod, rest, err := decode(rest)
		if err != nil {
			return nil, nil, err
		}
		return term.NewPi(name, dom, cod), rest, nil
	case tagApp:
		fun, rest, err := decode(rest)
		if err != nil {
			return nil, nil, err
		}
		arg, rest, err := decode(rest)
		if err != nil {
			return nil, nil, err
		}
		return term.NewApp(fun, arg), rest, nil
	default:
		return nil, nil, fmt.Errorf("wire: invalid tag byte %d", tag)
	}
}

func readUint64(data []byte) (uint64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, fmt.Errorf("wire: unexpected end of input reading index")
	}
	return binary.LittleEndian.Uint64(data[:8]), data[8:], nil
}

func readString(data []byte) (string, []byte, error) {
	n, data, err := readUint64(data)
	if err != nil {
		return "", nil, err
	}
	if uint64(len(data)) < n {
		return "", nil, fmt.Errorf("wire: unexpected end of input reading %d-byte string", n)
	}
	return string(data[:n]), data[n:], nil
}
