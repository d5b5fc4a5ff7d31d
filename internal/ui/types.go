package ui

// Bubble Tea follows the Elm Architecture (Model-View-Update).
// These are the messages specific to this program.

type (
	// ConfigChangedMsg signals that the watched config file was written.
	ConfigChangedMsg struct {
		Path string
	}
	configWatchFailedMsg struct {
		err error
	}
)
