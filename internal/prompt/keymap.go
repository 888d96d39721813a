package prompt

// Key strings as reported by tea.KeyMsg.String().
const (
	KeyEnter    = "enter"
	KeyLineFeed = "ctrl+j" // Enter when the terminal still translates CR to LF
	KeyEsc      = "esc"
	KeyCtrlC    = "ctrl+c"
)
