// Package interactive provides the command shell of hwif-sim.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/controlloop"
	"github.com/openhwif/hwif-go/pkg/handle"
)

// Resources is the part of resource.Manager the shell uses.
type Resources interface {
	StateInterface(fullName string) (handle.StateInterface, error)
	ClaimCommandInterface(fullName string) (*handle.CommandInterface, error)
	ReleaseCommandInterface(ci *handle.CommandInterface) error
	IsClaimed(fullName string) bool
	StateInterfaceNames() []string
	CommandInterfaceNames() []string
	Components() []component.Component
}

// Stepper is the part of controlloop.Loop the shell uses.
type Stepper interface {
	Step(ctx context.Context) error
	Stats() controlloop.Stats
}

// Shell handles interactive mode for hwif-sim.
type Shell struct {
	res  Resources
	loop Stepper
	out  io.Writer
	rl   *readline.Instance

	// Command interfaces claimed by set, keyed by full name.
	claimed map[string]*handle.CommandInterface
}

// New creates a shell reading commands from the terminal.
func New(res Resources, loop Stepper) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hwif> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s := NewWithWriter(res, loop, rl.Stdout())
	s.rl = rl
	return s, nil
}

// NewWithWriter creates a shell without a terminal. Commands are fed with
// Execute and output goes to w.
func NewWithWriter(res Resources, loop Stepper, w io.Writer) *Shell {
	return &Shell{
		res:     res,
		loop:    loop,
		out:     w,
		claimed: make(map[string]*handle.CommandInterface),
	}
}

// Run reads and executes commands until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	if s.rl == nil {
		return
	}
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Execute(ctx, line) {
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns false when the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "list", "ls", "l":
		s.cmdList()
	case "get", "g":
		s.cmdGet(args)
	case "set", "s":
		s.cmdSet(args)
	case "release":
		s.cmdRelease(args)
	case "step":
		s.cmdStep(ctx, args)
	case "status":
		s.cmdStatus()
	case "stats":
		s.cmdStats()
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

// Release hands every claimed command interface back to the manager.
func (s *Shell) Release() {
	for name, ci := range s.claimed {
		if err := s.res.ReleaseCommandInterface(ci); err != nil {
			fmt.Fprintf(s.out, "Failed to release %s: %v\n", name, err)
		}
		delete(s.claimed, name)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
hwif-sim Commands:
  Interfaces:
    list                 - List state and command interfaces
    get <name>           - Read a state interface (or a claimed command)
    set <name> <value>   - Claim a command interface and write a value
    release <name>       - Give a claimed command interface back

  Control loop:
    step [n]             - Run n read/update/write cycles (default 1)
    status               - Show component lifecycle status
    stats                - Show loop statistics

  General:
    help                 - Show this help
    quit                 - Exit

  Names are <component>/<interface>, e.g. joint1/velocity`)
}

func (s *Shell) cmdList() {
	fmt.Fprintln(s.out, "State interfaces:")
	for _, name := range s.res.StateInterfaceNames() {
		si, err := s.res.StateInterface(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(s.out, "  %-28s %s\n", name, formatValue(si.Value()))
	}

	fmt.Fprintln(s.out, "Command interfaces:")
	for _, name := range s.res.CommandInterfaceNames() {
		marker := ""
		switch {
		case s.claimed[name] != nil:
			marker = " (claimed here)"
		case s.res.IsClaimed(name):
			marker = " (claimed)"
		}
		fmt.Fprintf(s.out, "  %s%s\n", name, marker)
	}
}

func (s *Shell) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: get <name>")
		return
	}
	name := args[0]

	if si, err := s.res.StateInterface(name); err == nil {
		fmt.Fprintf(s.out, "%s = %s\n", name, formatValue(si.Value()))
		return
	}
	if ci := s.claimed[name]; ci != nil {
		fmt.Fprintf(s.out, "%s = %s (command)\n", name, formatValue(ci.Value()))
		return
	}
	fmt.Fprintf(s.out, "Unknown interface: %s\n", name)
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <name> <value>")
		fmt.Fprintln(s.out, "  Example: set joint1/velocity 0.5")
		return
	}
	name := args[0]

	ci, err := s.claim(name)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	v, err := handle.ParseValue(ci.Kind(), strings.Join(args[1:], " "))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid value: %v\n", err)
		return
	}
	if err := ci.SetValue(v); err != nil {
		fmt.Fprintf(s.out, "Write failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

// claim returns the held command interface for name, claiming it first if
// needed.
func (s *Shell) claim(name string) (*handle.CommandInterface, error) {
	if ci := s.claimed[name]; ci != nil {
		return ci, nil
	}
	ci, err := s.res.ClaimCommandInterface(name)
	if err != nil {
		return nil, err
	}
	s.claimed[name] = ci
	return ci, nil
}

func (s *Shell) cmdRelease(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: release <name>")
		return
	}
	ci := s.claimed[args[0]]
	if ci == nil {
		fmt.Fprintf(s.out, "Not claimed here: %s\n", args[0])
		return
	}
	delete(s.claimed, args[0])
	if err := s.res.ReleaseCommandInterface(ci); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdStep(ctx context.Context, args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(s.out, "Invalid cycle count: %s\n", args[0])
			return
		}
		n = v
	}

	for i := 0; i < n; i++ {
		if err := s.loop.Step(ctx); err != nil {
			fmt.Fprintf(s.out, "Cycle failed: %v\n", err)
			return
		}
	}
	fmt.Fprintf(s.out, "Ran %d cycle(s)\n", n)
}

func (s *Shell) cmdStatus() {
	for _, c := range s.res.Components() {
		fmt.Fprintf(s.out, "  %-20s %s\n", c.Name(), c.Status())
	}
}

func (s *Shell) cmdStats() {
	st := s.loop.Stats()
	fmt.Fprintf(s.out, "Run:       %s\n", st.RunID)
	fmt.Fprintf(s.out, "Cycles:    %d\n", st.Cycles)
	fmt.Fprintf(s.out, "Errors:    %d\n", st.Errors)
	fmt.Fprintf(s.out, "Overruns:  %d\n", st.Overruns)
	fmt.Fprintf(s.out, "Last:      %s\n", st.LastCycle)
}

// Claimed returns the names of the command interfaces held by the shell.
func (s *Shell) Claimed() []string {
	names := make([]string, 0, len(s.claimed))
	for name := range s.claimed {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func formatValue(v handle.Value, err error) string {
	if err != nil {
		if errors.Is(err, handle.ErrUnbound) {
			return "<unbound>"
		}
		return fmt.Sprintf("<%v>", err)
	}
	return v.String()
}
