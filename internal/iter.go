// Package internal holds helpers shared by the tapevm packages.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates pair iterators into a single iterator sequence.
// Iteration stops in the middle of a sequence if the consumer stops.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}
