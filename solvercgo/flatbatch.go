package solvercgo

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Batch request/response framing, hand-built directly against the
// flatbuffers builder/table primitives rather than flatc-generated
// accessors — there is no .fbs schema in this repo, just a small fixed
// layout shared by the encode and decode sides below. Field order
// below is the wire contract; do not reorder without updating both
// sides together.
//
// BatchRequest fields: 0 batchID(int32), 1 deals(vector<string>),
// 2 strain(int8), 3 leader(int8), 4 trickCmd(string),
// 5 moves(vector<string>).
//
// BatchResponse fields: 0 batchID(int32), 1 tricks(vector<int32>),
// row-major [deal][move] with len(moves) from the request.

// EncodeBatchRequest builds one flatbuffers-encoded request scoring
// every move in moves against every deal in deals, sharing one strain,
// leader, and in-progress-trick replay command — mirroring
// signalnine-darwindeck's cgo/bridge.go SimulateBatch shape, batching
// many units of work into a single FFI round trip.
func EncodeBatchRequest(batchID int32, deals []string, strain, leader int8, trickCmd string, moves []string) []byte {
	b := flatbuffers.NewBuilder(1024)

	dealOffsets := make([]flatbuffers.UOffsetT, len(deals))
	for i, d := range deals {
		dealOffsets[i] = b.CreateString(d)
	}
	dealsVec := buildStringVector(b, dealOffsets)

	moveOffsets := make([]flatbuffers.UOffsetT, len(moves))
	for i, m := range moves {
		moveOffsets[i] = b.CreateString(m)
	}
	movesVec := buildStringVector(b, moveOffsets)

	trickOff := b.CreateString(trickCmd)

	b.StartObject(6)
	b.PrependInt32Slot(0, batchID, 0)
	b.PrependUOffsetTSlot(1, dealsVec, 0)
	b.PrependInt8Slot(2, strain, 0)
	b.PrependInt8Slot(3, leader, 0)
	b.PrependUOffsetTSlot(4, trickOff, 0)
	b.PrependUOffsetTSlot(5, movesVec, 0)
	root := b.EndObject()

	b.Finish(root)
	return b.FinishedBytes()
}

// DecodeBatchRequest reverses EncodeBatchRequest. Used on the native
// side of the boundary (mirrored here in Go since no real DDS library
// is vendored in this repo).
func DecodeBatchRequest(buf []byte) (batchID int32, deals []string, strain, leader int8, trickCmd string, moves []string) {
	t := rootTable(buf)

	if o := t.Offset(4 + 2*0); o != 0 {
		batchID = t.GetInt32(o + t.Pos)
	}
	if o := t.Offset(4 + 2*1); o != 0 {
		deals = readStringVector(t, o)
	}
	if o := t.Offset(4 + 2*2); o != 0 {
		strain = t.GetInt8(o + t.Pos)
	}
	if o := t.Offset(4 + 2*3); o != 0 {
		leader = t.GetInt8(o + t.Pos)
	}
	if o := t.Offset(4 + 2*4); o != 0 {
		trickCmd = t.String(o + t.Pos)
	}
	if o := t.Offset(4 + 2*5); o != 0 {
		moves = readStringVector(t, o)
	}
	return
}

// EncodeBatchResponse builds the per-deal, per-move trick counts into
// one flat row-major vector (numDeals*numMoves, deal-major).
func EncodeBatchResponse(batchID int32, numMoves int, tricks []int32) []byte {
	b := flatbuffers.NewBuilder(1024)

	b.StartVector(4, len(tricks), 4)
	for i := len(tricks) - 1; i >= 0; i-- {
		b.PrependInt32(tricks[i])
	}
	tricksVec := b.EndVector(len(tricks))

	b.StartObject(2)
	b.PrependInt32Slot(0, batchID, 0)
	b.PrependUOffsetTSlot(1, tricksVec, 0)
	root := b.EndObject()

	b.Finish(root)
	return b.FinishedBytes()
}

// DecodeBatchResponse reverses EncodeBatchResponse. numMoves lets the
// caller reshape the flat vector back into [deal][move]; it is not
// itself encoded on the wire since the caller already knows its own
// request's move count.
func DecodeBatchResponse(buf []byte, numMoves int) (batchID int32, tricks [][]int32) {
	t := rootTable(buf)

	if o := t.Offset(4 + 2*0); o != 0 {
		batchID = t.GetInt32(o + t.Pos)
	}
	if o := t.Offset(4 + 2*1); o != 0 && numMoves > 0 {
		flat := readInt32Vector(t, o)
		for i := 0; i < len(flat); i += numMoves {
			end := i + numMoves
			if end > len(flat) {
				end = len(flat)
			}
			tricks = append(tricks, flat[i:end])
		}
	}
	return
}

func buildStringVector(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(4, len(offsets), 4)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}

func rootTable(buf []byte) *flatbuffers.Table {
	n := flatbuffers.GetUOffsetT(buf)
	return &flatbuffers.Table{Bytes: buf, Pos: n}
}

// readStringVector and readInt32Vector take the bare relative offset
// returned by Table.Offset: Table.Vector/VectorLen add t.Pos
// internally (unlike Table.String, which requires the caller to).
func readStringVector(t *flatbuffers.Table, fieldOffset flatbuffers.UOffsetT) []string {
	n := t.VectorLen(fieldOffset)
	start := t.Vector(fieldOffset)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		elemPos := start + flatbuffers.UOffsetT(i*4)
		out[i] = t.String(elemPos)
	}
	return out
}

func readInt32Vector(t *flatbuffers.Table, fieldOffset flatbuffers.UOffsetT) []int32 {
	n := t.VectorLen(fieldOffset)
	start := t.Vector(fieldOffset)
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = t.GetInt32(start + flatbuffers.UOffsetT(i*4))
	}
	return out
}
