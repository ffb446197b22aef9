package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

var (
	// ErrQuit is returned by Execute for the quit command.
	ErrQuit = errors.New("quit")
	// ErrUnknownCommand is returned for a command not in the table.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command gets the wrong arguments.
	ErrUsage = errors.New("usage")
)

// Command is one entry of the command table.
type Command struct {
	// Name is the first word of the command line.
	Name string
	// Args documents the arguments.
	Args string
	// Description is shown by help and the completer.
	Description string
	// Choices are completion candidates for the first argument.
	Choices []string
	// run executes the command with its arguments.
	run func(ctx context.Context, c *Console, args []string) error
}

// usage returns the command syntax.
func (cmd *Command) usage() string {
	if cmd.Args == "" {
		return cmd.Name
	}

	return cmd.Name + " " + cmd.Args
}

// commandTable lists every console command in help order.
func commandTable() []Command {
	return []Command{
		{Name: "help", Description: "Show available commands", run: runHelp},
		{Name: "status", Description: "Show system status", run: runStatus},
		{Name: "devices", Description: "List devices", run: runDevices},
		{Name: "history", Description: "Show recent events", run: runHistory},
		{
			Name: "security", Args: "on|off", Description: "Arm or disarm the security system",
			Choices: []string{"on", "off"}, run: runSecurity,
		},
		{
			Name: "detection", Args: "on|off", Description: "Arm or disarm the detection system",
			Choices: []string{"on", "off"}, run: runDetection,
		},
		{Name: "motion", Description: "Simulate motion in front of the cameras", run: runMotion},
		{Name: "smoke", Description: "Simulate smoke", run: runSmoke},
		{Name: "gas", Description: "Simulate a gas leak", run: runGas},
		{Name: "ack", Description: "Acknowledge the alarm and interrupt the sequence", run: runAck},
		{
			Name: "add", Args: "<L|C|T|S|D> <brand 1|2>", Description: "Add a device",
			Choices: []string{"L", "C", "T", "S", "D"}, run: runAdd,
		},
		{Name: "wait", Args: "<duration>", Description: "Pause, e.g. wait 1500ms", run: runWait},
		{Name: "quit", Description: "Exit", run: runQuit},
	}
}

// lookup finds a command by name.
func (c *Console) lookup(name string) (*Command, bool) {
	i := slices.IndexFunc(c.commands, func(cmd Command) bool { return cmd.Name == name })
	if i < 0 {
		return nil, false
	}

	return &c.commands[i], true
}

func runHelp(_ context.Context, c *Console, _ []string) error {
	for i := range c.commands {
		c.printf("  %-34s %s\n", c.commands[i].usage(), c.commands[i].Description)
	}

	return nil
}

func runStatus(_ context.Context, c *Console, _ []string) error {
	st := c.home.Status()

	c.printf("=== Security System ===\n")
	c.printf("  Status: %s\n", activeLabel(st.SecurityActive))
	c.printf("=== Detection System ===\n")
	c.printf("  Status: %s\n", activeLabel(st.Detection.Active))
	c.printf("  Sequence Running: %s\n", yesNo(st.Detection.SequenceRunning))
	c.printf("=== Home ===\n")
	c.printf("  Alarm: %s\n", ringingLabel(st.AlarmRinging))
	c.printf("  Devices: %d (lights: %d)\n", st.Devices, st.Lights)

	return nil
}

func runDevices(_ context.Context, c *Console, _ []string) error {
	for _, e := range c.home.Devices() {
		c.printf("  %-18s %s\n", e.ID, e.Device.Status())
	}

	c.printf("  %-18s %s\n", "alarm", c.home.Alarm().Status())

	return nil
}

func runHistory(_ context.Context, c *Console, _ []string) error {
	for _, e := range c.home.History() {
		actor := ""
		if e.Actor != nil {
			actor = " by " + e.Actor.String()
		}

		c.printf("  %s %-11s %s%s\n", e.At.Format(time.TimeOnly), e.Kind, e.Detail, actor)
	}

	return nil
}

func runSecurity(ctx context.Context, c *Console, args []string) error {
	on, err := parseSwitch(args)
	if err != nil {
		return err
	}

	c.home.SetSecurity(ctx, on)

	return nil
}

func runDetection(ctx context.Context, c *Console, args []string) error {
	on, err := parseSwitch(args)
	if err != nil {
		return err
	}

	c.home.SetDetection(ctx, on)

	return nil
}

func runMotion(ctx context.Context, c *Console, _ []string) error {
	if c.home.MotionDetected(ctx) {
		c.printf("Security sequence completed\n")
	} else {
		c.printf("Motion ignored\n")
	}

	return nil
}

func runSmoke(ctx context.Context, c *Console, _ []string) error {
	c.background(ctx, func(ctx context.Context) {
		c.printf("Detection sequence %s\n", c.home.SmokeDetected(ctx))
	})

	return nil
}

func runGas(ctx context.Context, c *Console, _ []string) error {
	c.background(ctx, func(ctx context.Context) {
		c.printf("Detection sequence %s\n", c.home.GasDetected(ctx))
	})

	return nil
}

func runAck(ctx context.Context, c *Console, _ []string) error {
	if c.home.Acknowledge(ctx) {
		c.printf("Alarm acknowledged\n")
	}

	return nil
}

func runAdd(ctx context.Context, c *Console, args []string) error {
	if len(args) != 2 || utf8.RuneCountInString(args[0]) != 1 {
		return fmt.Errorf("%w: add <L|C|T|S|D> <brand 1|2>", ErrUsage)
	}

	brand, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: brand must be a number: %w", ErrUsage, err)
	}

	shortcut, _ := utf8.DecodeRuneInString(args[0])

	entry, err := c.home.AddDevice(ctx, shortcut, brand)
	if err != nil {
		return err
	}

	c.printf("Added %s: %s\n", entry.ID, entry.Device.Status())

	return nil
}

func runWait(ctx context.Context, _ *Console, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: wait <duration>", ErrUsage)
	}

	d, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func runQuit(context.Context, *Console, []string) error {
	return ErrQuit
}

// parseSwitch reads a single on/off argument.
func parseSwitch(args []string) (bool, error) {
	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "on":
			return true, nil
		case "off":
			return false, nil
		}
	}

	return false, fmt.Errorf("%w: expected on or off", ErrUsage)
}

func activeLabel(active bool) string {
	if active {
		return "ACTIVE"
	}

	return "INACTIVE"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}

	return "NO"
}

func ringingLabel(ringing bool) string {
	if ringing {
		return "RINGING"
	}

	return "silent"
}
