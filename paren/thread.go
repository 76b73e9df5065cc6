/*
Copyright (C) 2026  Paren Language Contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package paren

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jtolds/gls"
)

// ThreadHandle backs a TagThread Value. Scheduling is whatever the Go
// runtime's preemptive goroutine scheduler does; the language guarantees no
// mutual exclusion beyond join (see the concurrency notes in SPEC_FULL.md).
type ThreadHandle struct {
	ID   uuid.UUID
	done chan struct{}
}

var threadCtxMgr = gls.NewContextManager()

// spawnThread starts a goroutine evaluating body forms in order against
// env (shared with the spawner, unsynchronized) and returns its handle
// immediately. A panic inside the body is caught, looked back up through
// goroutine-local storage for the thread's id and the (thread ...) form
// that spawned it, logged to stderr, and then swallowed: threads are not
// supervised (see SPEC_FULL.md §5), so a panicking body just finishes
// without propagating anything to the spawner or the process.
func spawnThread(body []Value, env *Env) Value {
	h := &ThreadHandle{ID: uuid.New(), done: make(chan struct{})}
	site := spawnSite(body)
	go threadCtxMgr.SetValues(gls.Values{"paren-thread-id": h.ID.String(), "paren-thread-site": site}, func() {
		defer close(h.done)
		defer func() {
			if r := recover(); r != nil {
				id, _ := threadCtxMgr.GetValue("paren-thread-id")
				site, _ := threadCtxMgr.GetValue("paren-thread-site")
				fmt.Fprintf(os.Stderr, "paren: thread %s (spawned at %s) panicked: %v\n", id, site, r)
			}
		}()
		for _, f := range body {
			Eval(f, env)
		}
	})
	return NewThread(h)
}

// spawnSite reconstructs the (thread BODY...) form for diagnostics. The
// tokenizer keeps no source positions, so this is the closest thing to a
// spawn-site this kernel can report.
func spawnSite(body []Value) string {
	parts := make([]string, len(body))
	for i, f := range body {
		parts[i] = String(f)
	}
	return "(thread " + strings.Join(parts, " ") + ")"
}

// Join blocks until h's body has finished. Reading from an already-closed
// channel is safe, so calling Join more than once on the same handle does
// not panic even though the language contract asks callers to join exactly
// once.
func (h *ThreadHandle) Join() {
	<-h.done
}
