package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oshokin/home-hub/internal/config"
	"github.com/oshokin/home-hub/internal/device"
	"github.com/oshokin/home-hub/internal/domain/detection"
	"github.com/oshokin/home-hub/internal/home"
)

// silentLine drops emergency calls.
type silentLine struct{}

func (silentLine) Call(context.Context, device.Service) {}

// newTestConsole builds a console over a quiet home with instant waits.
func newTestConsole(t *testing.T, opts ...home.Option) (*Console, *home.Home, *bytes.Buffer) {
	t.Helper()

	opts = append([]home.Option{
		home.WithActor(&home.Actor{Hostname: "hub-host", Username: "operator"}),
		home.WithDeviceLogger(zap.NewNop().Sugar()),
		home.WithEmergencyLine(silentLine{}),
		home.WithWaiter(detection.Instant),
	}, opts...)

	h, err := home.New(context.Background(), config.Default(), opts...)
	require.NoError(t, err)

	out := new(bytes.Buffer)

	return New(h, out), h, out
}

// TestExecute_UnknownCommand checks that unknown commands are reported.
func TestExecute_UnknownCommand(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)

	err := c.Execute(context.Background(), "dance")
	require.ErrorIs(t, err, ErrUnknownCommand)
}

// TestExecute_BlankAndComment checks that blank lines and comments are skipped.
func TestExecute_BlankAndComment(t *testing.T) {
	t.Parallel()

	c, _, out := newTestConsole(t)

	require.NoError(t, c.Execute(context.Background(), "   "))
	require.NoError(t, c.Execute(context.Background(), "# smoke"))
	require.Empty(t, out.String())
}

// TestExecute_Quit checks the quit sentinel.
func TestExecute_Quit(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)

	require.ErrorIs(t, c.Execute(context.Background(), "QUIT"), ErrQuit)
}

// TestExecute_Switches checks security and detection toggles and their usage errors.
func TestExecute_Switches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, h, _ := newTestConsole(t)

	require.NoError(t, c.Execute(ctx, "security on"))
	require.True(t, h.Security().IsActivated())

	require.NoError(t, c.Execute(ctx, "detection off"))
	require.False(t, h.Detection().IsActivated())

	require.ErrorIs(t, c.Execute(ctx, "security maybe"), ErrUsage)
	require.ErrorIs(t, c.Execute(ctx, "detection"), ErrUsage)
}

// TestExecute_Smoke checks that a background smoke sequence completes and reports.
func TestExecute_Smoke(t *testing.T) {
	t.Parallel()

	c, h, out := newTestConsole(t)

	require.NoError(t, c.Execute(context.Background(), "smoke"))
	c.Wait()

	require.Contains(t, out.String(), "Detection sequence completed")
	require.False(t, h.Detection().IsRunning())
}

// TestExecute_Gas checks that gas is ignored while detection is off.
func TestExecute_Gas(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _, out := newTestConsole(t)

	require.NoError(t, c.Execute(ctx, "detection off"))
	require.NoError(t, c.Execute(ctx, "gas"))
	c.Wait()

	require.Contains(t, out.String(), "Detection sequence not triggered")
}

// TestExecute_Motion checks motion in both security states.
func TestExecute_Motion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _, out := newTestConsole(t)

	require.NoError(t, c.Execute(ctx, "motion"))
	require.Contains(t, out.String(), "Motion ignored")

	require.NoError(t, c.Execute(ctx, "security on"))
	require.NoError(t, c.Execute(ctx, "motion"))
	require.Contains(t, out.String(), "Security sequence completed")
}

// TestExecute_Add checks device creation from shortcuts.
func TestExecute_Add(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, h, out := newTestConsole(t)
	before := len(h.Devices())

	require.NoError(t, c.Execute(ctx, "add L 2"))
	require.Len(t, h.Devices(), before+1)
	require.Contains(t, out.String(), "Added light-")

	require.ErrorIs(t, c.Execute(ctx, "add L"), ErrUsage)
	require.ErrorIs(t, c.Execute(ctx, "add L two"), ErrUsage)
	require.ErrorIs(t, c.Execute(ctx, "add X 1"), device.ErrUnknownInput)
}

// TestExecute_Reports checks that the report commands print something useful.
func TestExecute_Reports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _, out := newTestConsole(t)

	require.NoError(t, c.Execute(ctx, "security on"))

	for _, line := range []string{"help", "status", "devices", "history"} {
		require.NoError(t, c.Execute(ctx, line))
	}

	text := out.String()
	require.Contains(t, text, "Acknowledge the alarm")
	require.Contains(t, text, "=== Detection System ===")
	require.Contains(t, text, "Sequence Running: NO")
	require.Contains(t, text, "light-1")
	require.Contains(t, text, "operator@hub-host")
}

// TestExecute_Wait checks the pause command and its cancellation.
func TestExecute_Wait(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)

	require.NoError(t, c.Execute(context.Background(), "wait 1ms"))
	require.ErrorIs(t, c.Execute(context.Background(), "wait soon"), ErrUsage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, c.Execute(ctx, "wait 1h"), context.Canceled)
}

// TestRunScript_AcknowledgeInterrupts checks a real-time script where ack interrupts the smoke sequence.
func TestRunScript_AcknowledgeInterrupts(t *testing.T) {
	t.Parallel()

	c, h, out := newTestConsole(t, home.WithWaiter(detection.Timed))

	script := strings.Join([]string{
		"# smoke, then acknowledge while the alarm rings",
		"smoke",
		"wait 100ms",
		"ack",
		"quit",
		"smoke",
	}, "\n")

	require.NoError(t, c.RunScript(context.Background(), strings.NewReader(script)))

	require.Contains(t, out.String(), "Alarm acknowledged")
	require.Contains(t, out.String(), "Detection sequence interrupted")
	require.Equal(t, 1, strings.Count(out.String(), "Detection sequence"))
	require.False(t, h.Alarm().IsRinging())
}

// TestRunScript_StopsOnError checks that the failing line number is reported.
func TestRunScript_StopsOnError(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)

	err := c.RunScript(context.Background(), strings.NewReader("status\n\nbogus\nstatus\n"))
	require.ErrorIs(t, err, ErrUnknownCommand)
	require.ErrorContains(t, err, "line 3")
}

// TestRunScript_ShutdownInterrupts checks that end of input interrupts a running sequence.
func TestRunScript_ShutdownInterrupts(t *testing.T) {
	t.Parallel()

	c, h, out := newTestConsole(t, home.WithWaiter(detection.Timed))

	start := time.Now()

	require.NoError(t, c.RunScript(context.Background(), strings.NewReader("smoke\nwait 50ms\n")))
	require.Less(t, time.Since(start), 2*time.Second)
	require.Contains(t, out.String(), "Detection sequence interrupted")
	require.False(t, h.Detection().IsRunning())
}

// TestRunScript_QuitRightAfterSmoke checks that quitting before a real-time sequence has started still stops it.
func TestRunScript_QuitRightAfterSmoke(t *testing.T) {
	t.Parallel()

	for range 5 {
		c, h, out := newTestConsole(t, home.WithWaiter(detection.Timed))

		start := time.Now()

		require.NoError(t, c.RunScript(context.Background(), strings.NewReader("smoke\nquit\n")))
		require.Less(t, time.Since(start), 2*time.Second)
		require.Contains(t, out.String(), "Detection sequence")
		require.NotContains(t, out.String(), "Detection sequence completed")
		require.False(t, h.Detection().IsRunning())
		require.False(t, h.Alarm().IsRinging())
	}
}

// TestShutdown_RefusesLateSequences checks that no hazard command runs after the console stopped.
func TestShutdown_RefusesLateSequences(t *testing.T) {
	t.Parallel()

	c, h, out := newTestConsole(t)

	require.NoError(t, c.RunScript(context.Background(), strings.NewReader("quit\n")))

	require.NoError(t, c.Execute(context.Background(), "gas"))
	c.Wait()

	require.Contains(t, out.String(), "Detection sequence not triggered")
	require.False(t, h.Alarm().IsRinging())
}

// TestSuggest checks command and argument completion.
func TestSuggest(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)

	texts := func(suggests []prompt.Suggest) []string {
		result := make([]string, 0, len(suggests))
		for _, s := range suggests {
			result = append(result, s.Text)
		}

		return result
	}

	require.Len(t, c.suggest(""), len(commandTable()))
	require.ElementsMatch(t, []string{"smoke", "status", "security"}, texts(c.suggest("s")))
	require.Equal(t, []string{"on", "off"}, texts(c.suggest("security ")))
	require.Equal(t, []string{"off"}, texts(c.suggest("detection of")))
	require.Empty(t, c.suggest("status x y"))
	require.Empty(t, c.suggest("bogus "))
}

// TestComplete checks the prompt adapter with a real document.
func TestComplete(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestConsole(t)

	buf := prompt.NewBuffer()
	buf.InsertText("ac", false, true)

	suggests := c.Complete(*buf.Document())
	require.Len(t, suggests, 1)
	require.Equal(t, "ack", suggests[0].Text)
}
