package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kwsdr/gridmenu/internal/logging"
	"github.com/kwsdr/gridmenu/internal/menu"
	"github.com/kwsdr/gridmenu/internal/menufile"
	"github.com/kwsdr/gridmenu/internal/registry"
	"github.com/kwsdr/gridmenu/internal/remote"
	"github.com/kwsdr/gridmenu/internal/surface"
	"github.com/kwsdr/gridmenu/internal/tui"
)

// Simulator flags
var (
	menuPath   string
	panelCols  int
	panelRows  int
	listenAddr string
	bridgeName string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&menuPath, "menu", "", "Menu definition file (YAML); built-in example when empty")
	rootCmd.PersistentFlags().IntVar(&panelCols, "cols", surface.DefaultCols, "Panel width in character cells")
	rootCmd.PersistentFlags().IntVar(&panelRows, "rows", surface.DefaultRows, "Panel height in character cells")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
}

// runCmd launches the simulator with keyboard input only.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the panel simulator",
	Long: `Run the panel simulator in the terminal.

The menu is driven with the keyboard: arrow keys browse and scroll,
enter accepts, escape cancels, and 'd' toggles display ownership the
way the owning application would take the panel back.`,
	Example: `  # Simulate the built-in example menu
  gridmenu run

  # Simulate a menu definition file
  gridmenu run --menu receiver.yaml

  # Smaller panel, e.g. a 20x4 character module
  gridmenu run --menu receiver.yaml --cols 20 --rows 4`,
	RunE: runSimulator,
}

// serveCmd additionally opens the remote input bridge.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulator with the remote input bridge",
	Long: `Run the panel simulator and accept input events over WebSocket.

Button boards connect to ws://<host><listen>/input and send JSON
messages like {"event":"up"}. The bridge advertises itself over
mDNS/DNS-SD as a _gridmenu._tcp service so boards can discover it.`,
	Example: `  # Serve on the default port
  gridmenu serve --menu receiver.yaml

  # Custom listen address and service name
  gridmenu serve --listen :9000 --name bench-panel`,
	RunE: runSimulator,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8532", "Input bridge listen address")
	serveCmd.Flags().StringVar(&bridgeName, "name", "gridmenu", "mDNS instance name for the input bridge")
}

// initCmd writes an example menu file to edit from.
var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write an example menu definition file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "menu.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", path)
		}
		if err := menufile.WriteExample(path); err != nil {
			return err
		}
		fmt.Printf("Wrote example menu to %s\n", path)
		fmt.Println("Edit it, then run 'gridmenu run --menu " + path + "'")
		return nil
	},
}

func runSimulator(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	def, err := loadMenu()
	if err != nil {
		return err
	}

	cols, rows := panelGeometry()
	buf := surface.NewBuffer(cols, rows)
	ctrl := menu.New(len(def.Settings), buf, menu.WithGeometry(cols, rows))
	if err := def.Apply(ctrl, acceptingCallback); err != nil {
		return fmt.Errorf("failed to build menu: %w", err)
	}

	p := tea.NewProgram(tui.New(ctrl, buf, "gridmenu — "+menuTitle()), tea.WithAltScreen())

	// serve: forward bridge events into the Bubble Tea loop, which
	// serializes them with keyboard input.
	if cmd.Name() == "serve" {
		bridge := remote.NewBridge(bridgeName, listenAddr, func(e remote.Event) {
			p.Send(tui.RemoteEventMsg{Event: e})
		})
		if err := bridge.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = bridge.Stop(ctx)
		}()
	}

	_, err = p.Run()
	return err
}

func loadMenu() (*menufile.Menu, error) {
	if menuPath == "" {
		return menufile.Example(), nil
	}
	return menufile.Load(menuPath)
}

func menuTitle() string {
	if menuPath == "" {
		return "example menu"
	}
	return menuPath
}

// panelGeometry caps the configured panel size to what the terminal can
// actually show, leaving room for the simulator chrome.
func panelGeometry() (cols, rows int) {
	cols, rows = panelCols, panelRows
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cols, rows
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return cols, rows
	}
	// Border, title, status and help lines take 7 rows; border takes 2 cols.
	if maxRows := h - 7; maxRows > 0 && rows > maxRows {
		rows = maxRows
	}
	if maxCols := w - 2; maxCols > 0 && cols > maxCols {
		cols = maxCols
	}
	return cols, rows
}

// acceptingCallback builds the demo change callback: it logs the change and
// accepts it. A real firmware would reconfigure hardware here and return
// false when the value cannot be applied.
func acceptingCallback(name string) registry.ChangeFunc {
	return func(s *registry.Setting) bool {
		logging.Info("setting changed",
			zap.String("setting", name),
			zap.String("value", s.PendingValue()),
			zap.Bool("live_update", s.LiveUpdate()),
		)
		return true
	}
}
