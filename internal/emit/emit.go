// Package emit produces the shell script that pj writes to stdout.
// The process never runs cd or export itself; the parent shell does, by
// evaluating this output. Every statement is terminated with ";\n" so the
// stream stays valid under eval even when a later step fails.
package emit

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

type ctxKey struct{}

// Colors maps color names to their literal ANSI escape text. The escapes
// are kept as backslash sequences (not raw bytes) because they travel
// inside a quoted `echo -e` argument and the parent shell expands them.
var Colors = map[string]string{
	"none":    `\033[1;0m`,
	"black":   `\033[1;30m`,
	"red":     `\033[1;31m`,
	"danger":  `\033[1;31m`,
	"green":   `\033[1;32m`,
	"success": `\033[1;32m`,
	"yellow":  `\033[1;33m`,
	"warn":    `\033[1;33m`,
	"blue":    `\033[1;34m`,
	"purple":  `\033[1;35m`,
	"cyan":    `\033[1;36m`,
	"info":    `\033[1;36m`,
	"white":   `\033[1;37m`,
}

// Colorize wraps text in the escape pair for the named color.
// Unknown color names return the text unchanged.
func Colorize(text, color string) string {
	code, ok := Colors[color]
	if !ok {
		return text
	}
	return code + text + Colors["none"]
}

type envVar struct {
	name  string
	value string
}

// Emitter accumulates shell statements for a single invocation.
// In verbose mode it tracks exported variables so the fully expanded
// command can be echoed before each Run.
type Emitter struct {
	w       io.Writer
	verbose bool
	pending []envVar
}

// New creates an Emitter writing statements to w.
func New(w io.Writer, verbose bool) *Emitter {
	return &Emitter{w: w, verbose: verbose}
}

// WithEmitter attaches an Emitter to the context.
func WithEmitter(ctx context.Context, e *Emitter) context.Context {
	return context.WithValue(ctx, ctxKey{}, e)
}

// FromContext retrieves the Emitter from context.
// Returns an Emitter writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Emitter {
	if e, ok := ctx.Value(ctxKey{}).(*Emitter); ok {
		return e
	}
	return New(os.Stdout, false)
}

func (e *Emitter) write(stmt string) {
	fmt.Fprintf(e.w, "%s;\n", stmt)
}

// Cd emits a cd statement for the given path.
func (e *Emitter) Cd(path string) {
	e.write("cd " + Quote(path))
}

// Export emits an export statement and records the variable for the
// verbose pre-run display.
func (e *Emitter) Export(name, value string) {
	e.pending = append(e.pending, envVar{name: name, value: value})
	e.write("export " + name + "=" + Quote(value))
}

// Run emits an arbitrary shell command verbatim. The command is already a
// shell fragment, not a literal value, so it is not quoted. In verbose
// mode, pending exports are first echoed as a prefix of the command.
func (e *Emitter) Run(command string) {
	if e.verbose && len(e.pending) > 0 {
		parts := make([]string, 0, len(e.pending)+1)
		for _, v := range e.pending {
			parts = append(parts, v.name+"="+Quote(v.value))
		}
		parts = append(parts, command)
		e.EchoColor("Running: "+strings.Join(parts, " "), "info")
		e.pending = e.pending[:0]
	}
	e.write(command)
}

// Echo emits an echo statement with the message quoted as a literal.
func (e *Emitter) Echo(message string) {
	e.write("echo " + Quote(message))
}

// Echof emits a formatted echo statement.
func (e *Emitter) Echof(format string, args ...any) {
	e.Echo(fmt.Sprintf(format, args...))
}

// EchoColor emits an `echo -e` statement with the message wrapped in the
// named color's escape pair.
func (e *Emitter) EchoColor(message, color string) {
	e.write("echo -e " + Quote(Colorize(message, color)))
}
