package tiling

import "gonum.org/v1/gonum/stat/distuv"

// StepMarkov advances the chain by one event: it draws two independent
// exponential waiting times — rate a*q for addition (a = |addable|),
// rate r for removal (r = |removable|) — and applies whichever fires
// first. Competing exponential clocks realize the equilibrium
// distribution weighted by q^boxCount.
//
// distuv.Exponential.Rand already returns +Inf for a zero rate (it
// computes -log(u)/Rate), so an empty addable or removable set simply
// forces the other event without any explicit branch.
func (e *TilingEngine) StepMarkov(q float64) {
	a := float64(e.addable.Size())
	r := float64(e.removable.Size())

	t1 := distuv.Exponential{Rate: a * q, Src: e.markovSrc}.Rand()
	t2 := distuv.Exponential{Rate: r, Src: e.markovSrc}.Rand()

	if t1 < t2 {
		e.AddRandomBox()
	} else {
		e.RemoveRandomBox()
	}
}

// GenerateWithMarkovChain calls StepMarkov(q) n times.
func (e *TilingEngine) GenerateWithMarkovChain(n int, q float64) {
	for i := 0; i < n; i++ {
		e.StepMarkov(q)
	}
}
