package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/c-bata/go-prompt"
	"golang.org/x/term"

	"github.com/oshokin/home-hub/internal/home"
	"github.com/oshokin/home-hub/internal/logger"
)

// Console executes text commands against a home.
type Console struct {
	// home is the simulated home.
	home *home.Home
	// commands is the command table.
	commands []Command

	// outMu serializes writes to out from background sequences.
	outMu sync.Mutex
	// out receives command output.
	out io.Writer

	// wg tracks background sequences.
	wg sync.WaitGroup
	// stopBackground cancels every background sequence, started or still pending.
	stopBackground context.CancelFunc
	// backgroundDone is cancelled by stopBackground.
	backgroundDone context.Context
}

// New creates a console writing to out.
func New(h *home.Home, out io.Writer) *Console {
	backgroundDone, stopBackground := context.WithCancel(context.Background())

	return &Console{
		home:           h,
		commands:       commandTable(),
		out:            out,
		stopBackground: stopBackground,
		backgroundDone: backgroundDone,
	}
}

// Execute runs one command line. Blank lines and lines starting with # do nothing.
// It returns ErrQuit for the quit command.
func (c *Console) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name := strings.ToLower(fields[0])

	cmd, ok := c.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q, type help for usage", ErrUnknownCommand, name)
	}

	logger.DebugKV(ctx, "Executing command", "command", name, "args", fields[1:])

	return cmd.run(ctx, c, fields[1:])
}

// Wait blocks until every background sequence has finished.
func (c *Console) Wait() {
	c.wg.Wait()
}

// Run reads commands from in until quit, end of input or cancellation.
// A terminal gets an interactive prompt with completion, anything else is read as a script.
func (c *Console) Run(ctx context.Context, in *os.File) error {
	if term.IsTerminal(int(in.Fd())) {
		return c.RunInteractive(ctx)
	}

	return c.RunScript(ctx, in)
}

// RunInteractive reads commands from a go-prompt session.
func (c *Console) RunInteractive(ctx context.Context) error {
	ctx = logger.WithName(ctx, "console")

	c.printf("help for usage, quit to exit\n")

	for ctx.Err() == nil {
		line := prompt.Input("home> ", c.Complete, prompt.OptionTitle("home-hub"))

		if err := c.Execute(ctx, line); err != nil {
			if errors.Is(err, ErrQuit) {
				break
			}

			c.printf("error: %v\n", err)
		}
	}

	c.shutdown(ctx)

	return nil
}

// RunScript executes commands line by line, stopping at the first failing one.
func (c *Console) RunScript(ctx context.Context, r io.Reader) error {
	ctx = logger.WithName(ctx, "console")

	scanner := bufio.NewScanner(r)
	lineNo := 0

	var runErr error

	for scanner.Scan() && ctx.Err() == nil {
		lineNo++

		if err := c.Execute(ctx, scanner.Text()); err != nil {
			if errors.Is(err, ErrQuit) {
				break
			}

			runErr = fmt.Errorf("line %d: %w", lineNo, err)

			break
		}
	}

	if err := scanner.Err(); err != nil && runErr == nil {
		runErr = fmt.Errorf("read script: %w", err)
	}

	c.shutdown(ctx)

	return runErr
}

// shutdown interrupts running and pending sequences and waits for background work.
// The console starts no new sequences afterwards.
func (c *Console) shutdown(ctx context.Context) {
	if c.home.Detection().IsRunning() {
		logger.Info(ctx, "Interrupting the running sequence before exit")
	}

	c.stopBackground()
	c.Wait()
}

// background runs fn in its own goroutine, tracked by Wait.
// The context given to fn is also cancelled by shutdown.
func (c *Console) background(ctx context.Context, fn func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(ctx)
	if c.backgroundDone.Err() != nil {
		cancel()
	}

	stop := context.AfterFunc(c.backgroundDone, cancel)

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		defer cancel()
		defer stop()

		fn(ctx)
	}()
}

// printf writes to the console output.
func (c *Console) printf(format string, args ...any) {
	c.outMu.Lock()
	defer c.outMu.Unlock()

	_, _ = fmt.Fprintf(c.out, format, args...)
}
