// Package candidateset implements CandidateSet: a set of vector.Vec3
// values supporting insertion, removal, size queries, reset to an
// initial snapshot, and uniform-random draw.
//
// The tiling engine asks, for every add or remove step, "does updating
// this box change candidacy of its six neighbors?" many times per
// step — each answer is an insert/remove against one of two
// CandidateSets (addable, removable). A plain hash set already encodes
// its own key per element, so no secondary index is needed for
// membership; it is, however, needed for O(1) uniform random draw,
// which a bare map cannot provide without an O(n) scan. CandidateSet
// therefore pairs a map (membership + O(1) removal) with a parallel
// slice (O(1) random draw by index), keeping the two in lockstep.
//
// Random draw must not bias toward any particular insertion order —
// see CandidateSet.GetRandom.
package candidateset
