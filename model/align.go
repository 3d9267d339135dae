// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// Segment is a run of identical labels over the interval [Start, End).
type Segment struct {
	// Start index (inclusive)
	Start int `json:"s"`
	// End index (exclusive)
	End int `json:"e"`
	// Name of the label.
	Name string `json:"n"`
}

// Len returns the number of positions covered by the segment.
func (s Segment) Len() int { return s.End - s.Start }

// Alignment is a sequence of contiguous segments.
type Alignment []Segment

// AlignLabels merges consecutive elements with the same label into
// segments. Returns nil for an empty slice.
func AlignLabels(labels []string) Alignment {

	if len(labels) == 0 {
		return nil
	}
	var al Alignment
	seg := Segment{Start: 0, Name: labels[0]}
	for idx, v := range labels {
		if v != seg.Name {
			seg.End = idx
			al = append(al, seg)
			seg = Segment{Start: idx, Name: v}
		}
	}
	seg.End = len(labels)
	return append(al, seg)
}

// Valid returns true if segments are non-empty, start at zero and
// each one starts where the previous one ends.
func (al Alignment) Valid() bool {

	last := 0
	for _, s := range al {
		if s.Start != last || s.End <= s.Start {
			return false
		}
		last = s.End
	}
	return true
}

// Labels expands the alignment into one label per position.
func (al Alignment) Labels() []string {

	if len(al) == 0 {
		return nil
	}
	labels := make([]string, 0, al[len(al)-1].End)
	for _, s := range al {
		for i := s.Start; i < s.End; i++ {
			labels = append(labels, s.Name)
		}
	}
	return labels
}

// String prints segments as name[start,end).
func (al Alignment) String() string {
	parts := make([]string, len(al))
	for i, s := range al {
		parts[i] = fmt.Sprintf("%s[%d,%d)", s.Name, s.Start, s.End)
	}
	return strings.Join(parts, " ")
}

// Matches returns the number of positions where ref and hyp have the
// same label. The slices must have the same length.
func Matches(ref, hyp []string) (int, error) {

	if len(ref) != len(hyp) {
		return 0, fmt.Errorf("ref length [%d] and hyp length [%d] don't match", len(ref), len(hyp))
	}
	var n int
	for i := range ref {
		if ref[i] == hyp[i] {
			n++
		}
	}
	return n, nil
}

// Accuracy returns the fraction of positions where ref and hyp agree.
func Accuracy(ref, hyp []string) (float64, error) {

	n, err := Matches(ref, hyp)
	if err != nil {
		return 0, err
	}
	if len(ref) == 0 {
		return 0, fmt.Errorf("empty label sequence")
	}
	return float64(n) / float64(len(ref)), nil
}
