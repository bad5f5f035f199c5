package graphics

// Key and Action share their values with GLFW so backends can convert directly.
type Key int

type Action int

const (
	KeySpace  Key = 32
	KeyQ      Key = 81
	KeyEscape Key = 256
	KeyEnter  Key = 257
)

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// CloseRequested reports whether a key event should set the close flag.
// Only a press of Escape does.
func CloseRequested(key Key, action Action) bool {
	return key == KeyEscape && action == Press
}
