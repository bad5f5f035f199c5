package glfwcontext

import (
	"errors"
	"fmt"
	"io"
	"os"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

// ReportError writes GLFW errors to stderr as "Error: <description> (<code>)".
// Errors from anywhere else are ignored.
func ReportError(err error) {
	writeError(os.Stderr, err)
}

func writeError(w io.Writer, err error) bool {
	var gerr *glfw.Error
	if !errors.As(err, &gerr) {
		return false
	}
	fmt.Fprintf(w, "Error: %s (%d)\n", gerr.Desc, int(gerr.Code))
	return true
}
