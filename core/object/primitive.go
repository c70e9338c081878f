package object

import "fmt"

// PrimitiveType selects which scalar variant of a generic class is requested.
// It is part of the registry key and is never mutated.
type PrimitiveType int

const (
	PTNotGeneric PrimitiveType = iota
	PTBool
	PTChar
	PTInt8
	PTUint8
	PTInt16
	PTUint16
	PTInt32
	PTUint32
	PTInt64
	PTUint64
	PTFloat32
	PTFloat64
	PTFloatMax
	PTComplex128
	PTObject
	PTUndefined
)

var primitiveTypeNames = map[PrimitiveType]string{
	PTNotGeneric: "not_generic",
	PTBool:       "bool",
	PTChar:       "char",
	PTInt8:       "int8",
	PTUint8:      "uint8",
	PTInt16:      "int16",
	PTUint16:     "uint16",
	PTInt32:      "int32",
	PTUint32:     "uint32",
	PTInt64:      "int64",
	PTUint64:     "uint64",
	PTFloat32:    "float32",
	PTFloat64:    "float64",
	PTFloatMax:   "floatmax",
	PTComplex128: "complex128",
	PTObject:     "object",
	PTUndefined:  "undefined",
}

func (t PrimitiveType) String() string {
	if s, ok := primitiveTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("primitive(%d)", int(t))
}

// ParsePrimitiveType converts a textual tag ("float64", "not_generic", ...)
// back to its PrimitiveType. Used by the CLI.
func ParsePrimitiveType(s string) (PrimitiveType, error) {
	for t, name := range primitiveTypeNames {
		if name == s {
			return t, nil
		}
	}
	return PTUndefined, fmt.Errorf("unknown primitive type %q", s)
}
