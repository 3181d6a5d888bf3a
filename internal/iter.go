// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package internal holds helpers shared by the mipsi packages.
package internal

import (
	"iter"
)

// IterSeq2Concat yields every pair of each sequence in turn, stopping early
// when the consumer does.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
