// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatx provides helpers for dense probability lattices stored as
// slices of float64 and int rows.
package floatx

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrZeroLength = Error("floatx: zero length in slice definition")
	ErrRagged     = Error("floatx: rows have different lengths")
)

// MakeFloat2D allocates an n1 x n2 matrix backed by a single array.
func MakeFloat2D(n1, n2 int) [][]float64 {

	buf := make([]float64, n1*n2)
	s := make([][]float64, n1)
	for i := 0; i < n1; i++ {
		s[i] = buf[i*n2 : (i+1)*n2 : (i+1)*n2]
	}
	return s
}

// MakeInt2D allocates an n1 x n2 int matrix backed by a single array.
func MakeInt2D(n1, n2 int) [][]int {

	buf := make([]int, n1*n2)
	s := make([][]int, n1)
	for i := 0; i < n1; i++ {
		s[i] = buf[i*n2 : (i+1)*n2 : (i+1)*n2]
	}
	return s
}

// Check2D returns the shape of s. Panics if s is empty or ragged.
func Check2D(s [][]float64) (n1, n2 int) {

	n1 = len(s)
	if n1 == 0 {
		panic(ErrZeroLength)
	}
	n2 = len(s[0])
	if n2 == 0 {
		panic(ErrZeroLength)
	}
	for _, row := range s[1:] {
		if len(row) != n2 {
			panic(ErrRagged)
		}
	}
	return n1, n2
}

// Copy2D returns a deep copy of s.
func Copy2D(s [][]float64) [][]float64 {

	if len(s) == 0 {
		return nil
	}
	out := MakeFloat2D(len(s), len(s[0]))
	for i, row := range s {
		if len(row) != len(out[i]) {
			panic(ErrRagged)
		}
		copy(out[i], row)
	}
	return out
}

// RowSums returns the sum of each row.
func RowSums(s [][]float64) []float64 {

	sums := make([]float64, len(s))
	for i, row := range s {
		sums[i] = floats.Sum(row)
	}
	return sums
}

// NormalizeRow scales row in place so it sums to one. Returns the original
// sum. The row is left untouched when the sum is zero.
func NormalizeRow(row []float64) float64 {

	sum := floats.Sum(row)
	if sum == 0 {
		return 0
	}
	floats.Scale(1/sum, row)
	return sum
}

// Clear2D sets all values to zero.
func Clear2D(s [][]float64) {

	for _, row := range s {
		for j := range row {
			row[j] = 0
		}
	}
}

// Equal2D returns true if both matrices have the same shape and
// identical values.
func Equal2D(a, b [][]float64) bool {

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.Same(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Dense wraps s as a gonum matrix for printing. Values are copied.
func Dense(s [][]float64) *mat.Dense {

	n1, n2 := Check2D(s)
	data := make([]float64, 0, n1*n2)
	for _, row := range s {
		data = append(data, row...)
	}
	return mat.NewDense(n1, n2, data)
}

// Format returns a printable representation of s for log dumps.
func Format(s [][]float64) fmt.Formatter {
	return mat.Formatted(Dense(s), mat.Squeeze())
}
