package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render/assets"
	"github.com/frenchnum/frenchnum/internal/namer/cli/streams"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

const backNavigation = "back"

// Verify interface compliance in compile time.
var _ render.Renderer = (*Renderer)(nil)

// Renderer type is implementation of renderer that using prompts.
type Renderer struct {
	useTTY  bool
	in      *streams.In
	out     *streams.Out
	scanner *bufio.Scanner
}

// NewRenderer creates Renderer object.
func NewRenderer(in *streams.In, out *streams.Out, useTTY bool) *Renderer {
	renderer := &Renderer{
		useTTY: useTTY,
		in:     in,
		out:    out,
	}

	if in != nil {
		renderer.scanner = bufio.NewScanner(in)
	}

	return renderer
}

// Logo function just display logo.
func (r *Renderer) Logo() {
	_, _ = fmt.Fprint(r.out, assets.LogoText)
}

// SelectionMenu shows items and returns the chosen one. Without TTY items are numbered
// and the number is read from the input stream.
func (r *Renderer) SelectionMenu(ctx context.Context, title string, items []string) (string, error) {
	title = strings.TrimSpace(title)

	return awaitAnswer(ctx, func() (string, error) {
		if r.useTTY {
			sel := r.selectionPrompt(title, items)
			_, value, err := sel.Run()

			return value, wrapPromptError(err)
		}

		_, _ = fmt.Fprintln(r.out, title)

		for i, item := range items {
			_, _ = fmt.Fprintf(r.out, "%d. %s\n", i+1, item)
		}

		input, err := r.askLine("Write a number", func(s string) error {
			if i, err := strconv.Atoi(s); err != nil || i < 1 || i > len(items) {
				return errors.New("invalid input, please try again")
			}

			return nil
		})
		if err != nil {
			return "", err
		}

		i, _ := strconv.Atoi(input)
		_, _ = fmt.Fprintf(r.out, "Selected: %s\n", items[i-1])

		return items[i-1], nil
	})
}

// InputMenu asks for a value until validateFunc accepts it.
func (r *Renderer) InputMenu(ctx context.Context, title string, validateFunc func(string) error) (string, error) {
	title = strings.TrimSpace(title)

	return awaitAnswer(ctx, func() (string, error) {
		if r.useTTY {
			prompt := r.stringInputPrompt(title, validateFunc)
			value, err := prompt.Run()

			return value, wrapPromptError(err)
		}

		return r.askLine(title, validateFunc)
	})
}

// askLine prints label and reads lines until validate accepts one. Input that does not
// come from a terminal is echoed so transcripts stay readable.
func (r *Renderer) askLine(label string, validate func(string) error) (string, error) {
	for {
		_, _ = fmt.Fprintf(r.out, "%s: ", label)

		input, err := r.ReadLine()
		if err != nil {
			return "", err
		}

		if !r.IsTerminal() {
			_, _ = fmt.Fprintln(r.out, input)
		}

		if err = validate(input); err == nil {
			return input, nil
		}

		_, _ = fmt.Fprintln(r.out, err.Error())
	}
}

// awaitAnswer runs ask in background so a blocked read does not outlive ctx.
func awaitAnswer(ctx context.Context, ask func() (string, error)) (string, error) {
	type answer struct {
		value string
		err   error
	}

	answerChan := make(chan answer, 1)

	go func() {
		value, err := ask()
		answerChan <- answer{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", errors.New(ctx.Err().Error())
	case a := <-answerChan:
		return a.value, a.err
	}
}

func wrapPromptError(err error) error {
	if err == nil {
		return nil
	}

	return errors.New(err.Error())
}

// WithSpinner starts spinner while function is running.
func (r *Renderer) WithSpinner(title string, fn func()) {
	if r.useTTY {
		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			defer cancel()
			fn()
		}()

		_ = spinner.New().
			Title(title).
			Context(ctx).
			Run()

		return
	}

	_, _ = fmt.Fprintln(r.out, title)

	fn()
}

// ReadLine reads one trimmed line from input stream.
func (r *Renderer) ReadLine() (string, error) {
	if r.scanner == nil {
		return "", errors.WithStack(io.EOF)
	}

	if r.scanner.Scan() {
		return strings.TrimSpace(r.scanner.Text()), nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", errors.New(err.Error())
	}

	return "", errors.WithStack(io.EOF)
}

// IsTerminal returns true if this stream is connected to a terminal.
func (r *Renderer) IsTerminal() bool {
	return r.in != nil && r.in.IsTerminal()
}

func (r *Renderer) Read(p []byte) (int, error) {
	return r.in.Read(p)
}

// selectionPrompt returns prompt for selection items.
func (r *Renderer) selectionPrompt(title string, items []string) promptui.Select {
	templates := &promptui.SelectTemplates{
		Label: "{{ . }}",
		Active: fmt.Sprintf(
			"  {{ if eq . \"%s\" }}> {{ . | red }}{{ else }}> {{ . | cyan }}{{ end }}",
			backNavigation),
		Inactive: fmt.Sprintf(
			"{{ if eq . \"%s\" }}  {{ . | red }}{{ else }}  {{ . }}{{ end }}",
			backNavigation),
		Selected: "\U00002714 {{ . | green }}",
	}

	//nolint:mnd
	return promptui.Select{
		Stdin:     r.in,
		Stdout:    r.out,
		Label:     title,
		Items:     items,
		Templates: templates,
		HideHelp:  true,
		Size:      10,
	}
}

// stringInputPrompt returns prompt for string input.
func (r *Renderer) stringInputPrompt(title string, validateFunc func(string) error) promptui.Prompt {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} ",
		Success: "{{ . | bold }} ",
	}

	return promptui.Prompt{
		Stdin:     r.in,
		Stdout:    r.out,
		Label:     title,
		Templates: templates,
		Validate:  validateFunc,
	}
}
