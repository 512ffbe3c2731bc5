package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/audio/sim"
	"github.com/zjrosen/audioreg/internal/log"
	"github.com/zjrosen/audioreg/internal/scripting"
	"github.com/zjrosen/audioreg/internal/sound"
	"github.com/zjrosen/audioreg/internal/watcher"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run <script.lua>",
	Short: "Run a Lua script against the sound registries",
	Long: `Run executes a Lua script with the sound registry functions and the
createElement/destroyElement host helpers installed as globals, then prints
what the registries hold and retires every instance.

With --watch the script reruns whenever it or the bank manifest changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "rerun when the script or bank changes")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	script := args[0]
	out := cmd.OutOrStdout()

	engine, cached, err := newEngine(cfg)
	if err != nil {
		return err
	}

	if !runWatch {
		return runOnce(out, engine, cached, script)
	}

	w, err := watcher.New(cfg.Watch.Debounce, script, cfg.Bank.Path)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	log.SafeGo(log.CatWatch, "run.watch", func() { w.Run(ctx) })

	if err := runOnce(out, engine, cached, script); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
	}
	fmt.Fprintln(out, "Watching for changes (Ctrl+C to stop)")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.C:
			bank, err := sim.LoadBankFile(cfg.Bank.Path)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			engine.Reload(bank)
			cached.Flush()
			if err := runOnce(out, engine, cached, script); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}

// runOnce runs script in a fresh sound context, reports the registries and
// retires everything the script left behind.
func runOnce(out io.Writer, engine *sim.Engine, events audio.Engine, script string) error {
	ctx := sound.NewContext(events)
	defer ctx.Close()

	runErr := scripting.RunFile(scripting.NewBindings(ctx), script)
	printSummary(out, ctx, engine)
	return runErr
}

func printSummary(out io.Writer, ctx *sound.Context, engine *sim.Engine) {
	fmt.Fprintln(out, "Owned events:")
	owned := ctx.Owned.Slots()
	if len(owned) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, s := range owned {
		inst, _ := ctx.Owned.Lookup(s.Element, s.Event)
		fmt.Fprintf(out, "  %s/%s  %s\n", s.Element, s.Event, describeInstance(inst))
	}

	fmt.Fprintln(out, "Ownerless events:")
	ownerless := ctx.Ownerless.Slots()
	if len(ownerless) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, v := range ownerless {
		inst, _ := ctx.Ownerless.Lookup(v)
		fmt.Fprintf(out, "  %s  %s\n", v, describeInstance(inst))
	}

	fmt.Fprintf(out, "Live instances: %d\n", engine.LiveCount())
}

func describeInstance(inst audio.Instance) string {
	s, ok := inst.(*sim.Instance)
	if !ok {
		return ""
	}
	snap := s.Snapshot()
	desc := string(snap.State)
	if snap.Paused {
		desc += ", paused"
	}
	p := snap.Attrs.Position
	return fmt.Sprintf("%s, volume %.2f, position (%g, %g, %g)", desc, snap.Volume, p.X, p.Y, p.Z)
}
