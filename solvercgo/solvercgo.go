// Package solvercgo binds the real double-dummy solver: a vendored
// native library reached through cgo. The direction is the reverse of
// signalnine-darwindeck's cgo/bridge.go (which exports a Go function TO
// a C caller); here Go calls INTO the native library, the shape real
// DDS wrappers take. Batched scoring uses the flatbuffers envelope in
// flatbatch.go so many sampled deals cross the FFI boundary in one
// round trip, amortizing call overhead the same way
// signalnine-darwindeck/cgo/bridge.go's SimulateBatch does.
package solvercgo

/*
#cgo LDFLAGS: -ldds
#include <stdlib.h>

// SolveBatch hands a flatbuffers-encoded BatchRequest to the native
// double-dummy solver and returns a flatbuffers-encoded BatchResponse.
// The native side owns the returned buffer; callers must pass it to
// dds_free_buffer when done. Implemented by the vendored DDS library,
// not by this repository.
extern void* dds_solve_batch(const void* request, int request_len, int* response_len);
extern void dds_free_buffer(void* buf);
*/
import "C"

import (
	"github.com/pkg/errors"

	"github.com/ninetrick/bridgeplay/card"
)

// Batcher is the cgo-backed batch solver handle. One Batcher may be
// reused across many BatchSolve calls; it holds no per-call state.
type Batcher struct{}

// NewBatcher constructs a Batcher. The zero value is already usable;
// this exists for symmetry with solver.Factory-style construction and
// as a home for future native-handle setup (e.g. loading book files).
func NewBatcher() *Batcher { return &Batcher{} }

// SolveBatch scores every move in moves against every deal in deals,
// sharing one strain/leader/trick-replay command, in a single native
// call. It returns tricks[deal][move], row-major in the order passed.
func (bt *Batcher) SolveBatch(batchID int32, deals []string, strain card.Suit, leader card.Player, trickCmd string, moves []string) (tricks [][]int32, err error) {
	req := EncodeBatchRequest(batchID, deals, int8(strain), int8(leader), trickCmd, moves)

	reqPtr := C.CBytes(req)
	defer C.free(reqPtr)

	var respLen C.int
	respPtr := C.dds_solve_batch(reqPtr, C.int(len(req)), &respLen)
	if respPtr == nil {
		return nil, errors.New("solvercgo: native batch solve returned no response")
	}
	defer C.dds_free_buffer(respPtr)

	resp := C.GoBytes(respPtr, respLen)
	_, rows := DecodeBatchResponse(resp, len(moves))
	return rows, nil
}
