package interval

// Warner is the diagnostic sink used by the scheduler.
// *log.Logger from charmbracelet/log satisfies it.
type Warner interface {
	Warn(msg interface{}, keyvals ...interface{})
}

// Warning messages emitted by the scheduler.
const (
	MsgFramesDropped = "running too slow, frames dropped"
	MsgRunningSlow   = "running too slow, frames will probably get dropped"
)

// WarnUnless emits msg through w when ok is false.
// A nil Warner discards the message.
func WarnUnless(w Warner, ok bool, msg string, keyvals ...interface{}) {
	if ok || w == nil {
		return
	}
	w.Warn(msg, keyvals...)
}
