package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgCelebrationDone is sent when the completion cue should disappear.
// Seq identifies the cue; a newer completion restarts the timer and makes
// older ticks stale.
type MsgCelebrationDone struct {
	Seq int
}

func (MsgCelebrationDone) sealed() {}
