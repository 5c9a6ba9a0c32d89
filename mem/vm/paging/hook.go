package paging

// HookPos names a point in fault handling where hooks are invoked.
type HookPos struct {
	Name string
}

var (
	// HookPosMiss triggers when a fault on an unmapped page is counted.
	// The frame is not known yet and is reported as -1.
	HookPosMiss = &HookPos{Name: "Miss"}

	// HookPosUpgrade triggers when a read-only page is granted write access.
	HookPosUpgrade = &HookPos{Name: "Upgrade"}

	// HookPosWriteBack triggers after a dirty page is written to the store.
	HookPosWriteBack = &HookPos{Name: "WriteBack"}

	// HookPosEvict triggers after a page loses its frame.
	HookPosEvict = &HookPos{Name: "Evict"}

	// HookPosLoad triggers after a page is read from the store and mapped.
	HookPosLoad = &HookPos{Name: "Load"}
)

// HookCtx is the information about the site where a hook is triggered.
type HookCtx struct {
	Pos   *HookPos
	Page  int
	Frame int
}

// A Hook is a short piece of program that runs when fault handling reaches a
// hook position.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc adapts a plain function to a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// hookList is shared by the dispatcher and the evictor so that one
// registration covers every hook position.
type hookList struct {
	hooks []Hook
}

// AcceptHook registers a hook.
func (h *hookList) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// NumHooks returns the number of registered hooks.
func (h *hookList) NumHooks() int {
	return len(h.hooks)
}

func (h *hookList) invoke(pos *HookPos, page, frame int) {
	if len(h.hooks) == 0 {
		return
	}

	ctx := HookCtx{Pos: pos, Page: page, Frame: frame}
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
