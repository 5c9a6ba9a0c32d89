package paging

import "github.com/sarchlab/virtmem/datarecording"

// EventTable is the table that RecordingHook writes into.
const EventTable = "paging_events"

type eventEntry struct {
	Seq   uint64
	Event string
	Page  int
	Frame int
}

// A RecordingHook stores every fault handling event as a row of EventTable.
type RecordingHook struct {
	recorder datarecording.DataRecorder
	seq      uint64
}

// NewRecordingHook creates EventTable in recorder and returns a hook that
// fills it.
func NewRecordingHook(
	recorder datarecording.DataRecorder,
) (*RecordingHook, error) {
	err := recorder.CreateTable(EventTable, eventEntry{})
	if err != nil {
		return nil, err
	}

	return &RecordingHook{recorder: recorder}, nil
}

// Func records the event.
func (h *RecordingHook) Func(ctx HookCtx) {
	h.seq++
	h.recorder.InsertData(EventTable, eventEntry{
		Seq:   h.seq,
		Event: ctx.Pos.Name,
		Page:  ctx.Page,
		Frame: ctx.Frame,
	})
}
