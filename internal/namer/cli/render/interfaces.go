package render

import (
	"context"
)

// Renderer interface implementation should talk to the user: show menus, ask for values
// and read numbers line by line.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Renderer --output=mock --outpkg=mock
type Renderer interface {
	// Logo should print the application banner.
	Logo()
	// SelectionMenu should let the user pick one of items.
	SelectionMenu(ctx context.Context, title string, items []string) (string, error)
	// InputMenu should ask for a value until validateFunc accepts it.
	InputMenu(ctx context.Context, title string, validateFunc func(string) error) (string, error)
	// WithSpinner should keep a spinner on screen while fn runs.
	WithSpinner(title string, fn func())
	// IsTerminal should report whether input comes from a terminal.
	IsTerminal() bool
	// ReadLine should return the next trimmed input line or io.EOF.
	ReadLine() (string, error)
	// Read should read raw input.
	Read(p []byte) (int, error)
}
