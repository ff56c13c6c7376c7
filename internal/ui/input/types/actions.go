package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type CommitAction struct{}

func (a CommitAction) Type() string { return "commit" }

type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

type TabAction struct{}

func (a TabAction) Type() string { return "tab" }

// Focus actions
type FocusAction struct{}

func (a FocusAction) Type() string { return "focus" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text     string
	Deleting bool // backspace and friends skip inline completion
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
