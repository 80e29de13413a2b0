package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/netweave/netweave/internal/config"
	"github.com/netweave/netweave/internal/emit"
	"github.com/netweave/netweave/internal/validate"
)

// newWatchCmd creates the "watch" subcommand for auto-rendering on config changes.
func newWatchCmd() *cobra.Command {
	var (
		validateOnly bool
		debounce     time.Duration
		target       string
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "watch [config]",
		Short: "Auto-render on config changes",
		Long: `Watch monitors the topology config for changes and automatically
re-validates and re-renders.

The watch command:
- Monitors the config file for changes
- Validates the topology on each change
- Renders if validation passes (unless --validate-only)
- Debounces rapid changes to avoid excessive renders

Examples:
    netweave watch topology.yaml
    netweave watch topology.yaml --validate-only
    netweave watch topology.yaml -o template.json --debounce 1s`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(configPath(args), watchOptions{
				validateOnly: validateOnly,
				debounce:     debounce,
				target:       target,
				outputFormat: outputFormat,
				outputFile:   outputFile,
			})
		},
	}

	cmd.Flags().BoolVar(&validateOnly, "validate-only", false, "Only validate, skip rendering")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&target, "target", "t", "cloudformation", "Output target: cloudformation or k8s")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format for rendering: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for rendering (default: summary only)")

	return cmd
}

type watchOptions struct {
	validateOnly bool
	debounce     time.Duration
	target       string
	outputFormat string
	outputFile   string
}

// runWatch monitors the config file and re-renders on changes.
func runWatch(path string, opts watchOptions) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory, not the file: editors replace files on save
	// and a watch on the old inode would go stale.
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	fmt.Printf("Watching: %s\n", absPath)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initial render
	fmt.Println("Running initial validate/render...")
	runWatchCycle(absPath, opts)

	// Debounce timer
	var debounceTimer *time.Timer
	renderChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only react to the config file itself
			if filepath.Base(event.Name) != filepath.Base(absPath) {
				continue
			}

			// Only process write/create/rename events
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case renderChan <- struct{}{}:
				default:
				}
			})

		case <-renderChan:
			fmt.Printf("\n[%s] Change detected, re-rendering...\n", time.Now().Format("15:04:05"))
			runWatchCycle(absPath, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// runWatchCycle validates the config and optionally renders the artifact.
func runWatchCycle(path string, opts watchOptions) {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return
	}

	topo, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Allocation error: %v\n", err)
		return
	}

	issues := validate.Run(topo)
	for _, issue := range toValidationIssues(issues) {
		fmt.Println(formatIssue(issue))
	}

	if validate.HasErrors(issues) {
		fmt.Println("Validation failed, skipping render")
		return
	}

	fmt.Println("Validation passed")

	if opts.validateOnly {
		return
	}

	artifact, err := emit.Emit(topo, emit.Target(opts.target), emit.Options{
		Format:      emit.Format(opts.outputFormat),
		Description: cfg.Description,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render error: %v\n", err)
		return
	}

	if opts.outputFile == "" {
		fmt.Printf("Render successful: %d networks, %d subnets\n", len(topo.Networks), topo.SubnetCount())
		return
	}

	if err := os.WriteFile(opts.outputFile, artifact, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		return
	}
	fmt.Printf("Render successful, wrote %s\n", opts.outputFile)
}
