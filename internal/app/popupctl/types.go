// Package popupctl owns the dashboard's modal popups.
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	TextInput
	Confirm
	Form
	Demo
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Help,
	Confirm,
	Form,
	TextInput,
	Demo,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Demo,
	TextInput,
	Form,
	Confirm,
	Help,
	Error,
}

// InputMode represents the type of text input being collected.
type InputMode int

const (
	// InputNone indicates no text input is active.
	InputNone InputMode = iota
	// InputSearch filters the current table.
	InputSearch
	// InputReply sends a broker message in a conversation.
	InputReply
	// InputEdit replaces an AI response before approving it.
	InputEdit
	// InputReject collects the reason a review is rejected.
	InputReject
)
