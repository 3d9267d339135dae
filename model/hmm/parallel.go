// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import "sync"

// forStates calls fn(j) for every state j. With more than one worker the
// states are split in contiguous blocks, one goroutine per block. Each call
// only writes values owned by state j.
func (m *Model) forStates(fn func(j int)) {

	N := len(m.states)
	w := m.workers
	if w <= 1 || N < 2 {
		for j := 0; j < N; j++ {
			fn(j)
		}
		return
	}
	if w > N {
		w = N
	}

	var wg sync.WaitGroup
	size := (N + w - 1) / w
	for lo := 0; lo < N; lo += size {
		hi := lo + size
		if hi > N {
			hi = N
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for j := lo; j < hi; j++ {
				fn(j)
			}
		}(lo, hi)
	}
	wg.Wait()
}
