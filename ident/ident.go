/*
Package ident issues identities for document nodes and rule records.

Every node in the block forest and every rule, property and action record
carries an identity that is unique for the lifetime of the process and
immutable once assigned. Clients of the engine inject a Generator, which
lets tests substitute a deterministic sequence for the random production
source.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package ident

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces process-unique identities. Implementations must never
// return a value they issued before.
type Generator interface {
	NewID() string
}

// Source returns the production generator, backed by random UUIDs.
// It is safe for concurrent use.
func Source() Generator {
	return uuidSource{}
}

type uuidSource struct{}

func (uuidSource) NewID() string {
	return uuid.NewString()
}

// Sequence returns a deterministic generator issuing "<prefix>-1",
// "<prefix>-2", and so on. Intended for tests, where identities have to be
// predictable for golden output comparison.
func Sequence(prefix string) Generator {
	return &sequence{prefix: prefix}
}

type sequence struct {
	prefix string
	n      uint64
}

func (s *sequence) NewID() string {
	n := atomic.AddUint64(&s.n, 1)
	return s.prefix + "-" + strconv.FormatUint(n, 10)
}
