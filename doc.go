/*
Package containers implements the ordered associative containers Set,
Multiset and Map on top of a single self-balancing search tree engine
(package avl).

All three containers keep their elements sorted by key at all times and
guarantee logarithmic insertion, removal and lookup. They differ only in
duplicate-key policy and in whether a value is stored alongside the key:

	Container  |  duplicates  |  payload
	-----------+--------------+---------
	Set        |  rejected    |  none
	Multiset   |  allowed     |  none
	Map        |  rejected    |  value V

Keys are ordered by the standard Go ordering of their type (cmp.Compare) when
created with NewSet / NewMultiset / NewMap, or by an arbitrary comparison
function with the corresponding ...Func constructor. The ordering must stay
consistent for as long as a key is stored; mutating ordering-relevant state of
a stored key is a contract violation.

Containers are not thread safe. Access one either from a single goroutine
only, or guard it with external locking.

# BSD License

Copyright (c) 2025–26, Azenizzka

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged by non-inserting key accessors called with a key
// that is not stored.
const ErrKeyNotFound = ContainerError("key not found")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
