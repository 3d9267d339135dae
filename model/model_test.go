package model

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestRandIntFromDist(t *testing.T) {
	dist := []float64{0.5, 0.5}
	freq := []int{0, 0}
	r := rand.New(rand.NewSource(DefaultSeed))
	for i := 0; i < 5000; i++ {
		ranint, err := RandIntFromDist(dist, r)
		if err != nil {
			t.Fatalf("RandIntFromDist failed: %s", err)
		}
		freq[ranint] = freq[ranint] + 1
	}
	ratio := float64(freq[0]) / 5000.0
	if math.Abs(ratio-0.5) > 0.05 {
		t.Fatalf("RandIntFromDist failed, ratio is %f", ratio)
	}

	if _, err := RandIntFromDist(nil, r); err == nil {
		t.Fatalf("expected error for empty distribution")
	}
	if _, err := RandIntFromDist([]float64{0, 0}, r); err == nil {
		t.Fatalf("expected error for distribution that doesn't sum to one")
	}
}

const seqData = `{"id":"s1","sequence":"xyxy"}
{"id":"s2","symbols":["x","x"],"labels":["A","A"]}
`

func TestSeqObserver(t *testing.T) {

	so, err := NewSeqObserver(strings.NewReader(seqData))
	if err != nil {
		t.Fatal(err)
	}
	c, err := so.ObsChan()
	if err != nil {
		t.Fatal(err)
	}

	var seqs []Seq
	for s := range c {
		seqs = append(seqs, s)
	}
	if so.Err() != nil {
		t.Fatal(so.Err())
	}
	if len(seqs) != 2 {
		t.Fatalf("expected 2 sequences, got %d", len(seqs))
	}
	if got := strings.Join(seqs[0].Observations(), ","); got != "x,y,x,y" {
		t.Fatalf("wrong observations for s1: %s", got)
	}
	if got := strings.Join(seqs[1].Observations(), ","); got != "x,x" {
		t.Fatalf("wrong observations for s2: %s", got)
	}
	if seqs[1].Labels[1] != "A" {
		t.Fatalf("wrong labels for s2: %v", seqs[1].Labels)
	}
}

func TestSeqObserverBadInput(t *testing.T) {

	so, _ := NewSeqObserver(strings.NewReader(`{"id":"s1","sequence":"xy"}
{"id":`))
	c, _ := so.ObsChan()
	n := 0
	for range c {
		n++
	}
	if n != 1 {
		t.Fatalf("expected 1 sequence before the error, got %d", n)
	}
	if so.Err() == nil {
		t.Fatalf("expected a decoding error")
	}
}
