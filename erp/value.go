// Copyright ©2024 The probabilistic-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erp

import "fmt"

// Kind identifies which concrete type a Value currently holds.
type Kind int

const (
	// KindBool is the kind of a boolean value, produced by Flip.
	KindBool Kind = iota
	// KindReal is the kind of a real value, produced by Gaussian,
	// Gamma, Beta and Uniform.
	KindReal
	// KindInt is the kind of an integer value, produced by Binomial,
	// Poisson and Multinomial.
	KindInt
	// KindVector is the kind of a real vector value, produced by
	// Dirichlet.
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindReal:
		return "real"
	case KindInt:
		return "int"
	case KindVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Value is the value of one random choice. It is a small tagged union
// rather than interface{} so that choice records stay cheap to clone
// (it is not comparable with ==, since the Vector variant holds a
// slice; use Equal): every ERP in this package produces and consumes
// exactly one Kind, and callers that mismatch a Kind get a panic
// instead of a silent type assertion failure.
type Value struct {
	kind Kind
	b    bool
	r    float64
	i    int
	v    []float64
}

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Real wraps a real value.
func Real(r float64) Value { return Value{kind: KindReal, r: r} }

// Int wraps an integer value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Vector wraps a real vector value. The slice is retained, not copied.
func Vector(v []float64) Value { return Value{kind: KindVector, v: v} }

// Kind reports which accessor is valid to call on v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the wrapped boolean. It panics if v.Kind() != KindBool.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic(fmt.Sprintf("erp: Value.Bool called on a %v value", v.kind))
	}
	return v.b
}

// Real returns the wrapped real. It panics if v.Kind() != KindReal.
func (v Value) Real() float64 {
	if v.kind != KindReal {
		panic(fmt.Sprintf("erp: Value.Real called on a %v value", v.kind))
	}
	return v.r
}

// Int returns the wrapped integer. It panics if v.Kind() != KindInt.
func (v Value) Int() int {
	if v.kind != KindInt {
		panic(fmt.Sprintf("erp: Value.Int called on a %v value", v.kind))
	}
	return v.i
}

// Vector returns the wrapped real vector. It panics if
// v.Kind() != KindVector.
func (v Value) Vector() []float64 {
	if v.kind != KindVector {
		panic(fmt.Sprintf("erp: Value.Vector called on a %v value", v.kind))
	}
	return v.v
}

// Equal reports whether v and o hold the same kind and value. Vector
// values compare element-wise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindReal:
		return v.r == o.r
	case KindInt:
		return v.i == o.i
	case KindVector:
		if len(v.v) != len(o.v) {
			return false
		}
		for i, x := range v.v {
			if x != o.v[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindReal:
		return fmt.Sprintf("%g", v.r)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindVector:
		return fmt.Sprintf("%v", v.v)
	default:
		return "<invalid>"
	}
}

// ParamsEqual reports whether two parameter slices hold the same
// values in the same order. Used by trace.Lookup to decide whether a
// reused record's parameters changed since it was last refreshed.
func ParamsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if x != b[i] {
			return false
		}
	}
	return true
}
