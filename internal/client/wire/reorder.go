package wire

import (
	"github.com/iudanet/liveclient/internal/models"
)

// ReorderDeletes reorders runs of sibling deletions so they apply deepest index first.
//
// The server emits sibling deletes in ascending index order; applying them in that order
// shifts the indices of the siblings still waiting. Consecutive whole-node deletes sharing
// one parent (same root and same parent path) are buffered and flushed in reverse arrival
// order as soon as a record with another parent, a non-delete record or the end of the
// batch is reached. Everything else keeps its arrival order.
func ReorderDeletes(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))

	var (
		buffer    []*models.DiffRecord
		bufferKey string
	)

	flush := func() {
		for i := len(buffer) - 1; i >= 0; i-- {
			out = append(out, buffer[i])
		}
		buffer = buffer[:0]
	}

	for _, rec := range records {
		diff, ok := rec.(*models.DiffRecord)
		if !ok || !diff.IsNodeDelete() {
			flush()
			out = append(out, rec)
			continue
		}

		key := parentKey(diff)
		if len(buffer) != 0 && key != bufferKey {
			flush()
		}

		bufferKey = key
		buffer = append(buffer, diff)
	}

	flush()

	return out
}

func parentKey(d *models.DiffRecord) string {
	return d.Root + fieldSeparator + d.Path.Parent().String()
}
