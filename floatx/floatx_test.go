package floatx

import (
	"fmt"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestMakeFloat2D(t *testing.T) {

	s := MakeFloat2D(3, 2)
	n1, n2 := Check2D(s)
	if n1 != 3 || n2 != 2 {
		t.Fatalf("wrong shape, expected [3,2], got [%d,%d]", n1, n2)
	}

	// Rows must not alias each other through append.
	s[0] = append(s[0], 7)
	if s[1][0] != 0 {
		t.Fatalf("append on row 0 overwrote row 1: %v", s)
	}
}

func TestRowSumsAndNormalize(t *testing.T) {

	s := [][]float64{{1, 3}, {2, 2}, {0, 0}}
	sums := RowSums(s)
	if !floats.Equal(sums, []float64{4, 4, 0}) {
		t.Fatalf("wrong row sums: %v", sums)
	}

	if sum := NormalizeRow(s[0]); sum != 4 {
		t.Fatalf("expected original sum 4, got %f", sum)
	}
	if !floats.EqualApprox(s[0], []float64{0.25, 0.75}, 1e-12) {
		t.Fatalf("row not normalized: %v", s[0])
	}
	if sum := NormalizeRow(s[2]); sum != 0 {
		t.Fatalf("expected zero sum, got %f", sum)
	}
}

func TestCopyAndEqual(t *testing.T) {

	s := [][]float64{{11, 22}, {33, 44}, {55, 66}}
	c := Copy2D(s)
	if !Equal2D(s, c) {
		t.Fatalf("copy differs: %v %v", s, c)
	}
	c[1][1] = 0
	if s[1][1] != 44 {
		t.Fatalf("copy shares storage with the original")
	}
	if Equal2D(s, c) {
		t.Fatalf("expected matrices to differ")
	}
	Clear2D(c)
	if floats.Sum(RowSums(c)) != 0 {
		t.Fatalf("clear failed: %v", c)
	}
}

func TestCheck2DRagged(t *testing.T) {

	defer func() {
		if r := recover(); r != ErrRagged {
			t.Fatalf("expected panic %v, got %v", ErrRagged, r)
		}
	}()
	Check2D([][]float64{{1, 2}, {3}})
}

func TestFormat(t *testing.T) {

	out := fmt.Sprintf("%.3f", Format([][]float64{{0.5, 0.25}, {1, 0}}))
	if !strings.Contains(out, "0.250") {
		t.Fatalf("unexpected format output: %q", out)
	}
}
