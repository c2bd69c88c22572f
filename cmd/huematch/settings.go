package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ferrovax/huematch/internal/settings"
	"github.com/ferrovax/huematch/internal/storage"
)

var flagSettingsYes bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change persisted settings",
	Long: `Show or change the persisted game settings.

Keys:
  blind_mode       - Hide your own swatch until submit (true/false)
  strict_mode      - Losing terminal focus blocks high-score saves (true/false)
  score_threshold  - Success threshold percentage (50 to 99.9)
  timer_duration   - Round timer in seconds (0 = no timer)

Examples:
  huematch settings
  huematch settings set blind_mode true
  huematch settings set score_threshold 95
  huematch settings reset-highscore --yes`,
	Args: cobra.NoArgs,
	Run:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset-highscore",
	Short: "Reset the persisted high score to zero",
	Args:  cobra.NoArgs,
	Run:   runSettingsReset,
}

func init() {
	settingsResetCmd.Flags().BoolVar(&flagSettingsYes, "yes", false, "Skip the confirmation prompt")
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func openSettings() (*storage.Store, *settings.Manager) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store, settings.Load(store)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	store, mgr := openSettings()
	defer store.Close()

	timer := "off"
	if mgr.TimerDuration() > 0 {
		timer = fmt.Sprintf("%ds", mgr.TimerDuration())
	}

	fmt.Printf("  %-16s %v\n", settings.KeyBlindMode, mgr.BlindMode())
	fmt.Printf("  %-16s %v\n", settings.KeyStrictMode, mgr.StrictMode())
	fmt.Printf("  %-16s %.1f\n", settings.KeyScoreThreshold, mgr.ScoreThreshold())
	fmt.Printf("  %-16s %s\n", settings.KeyTimerDuration, timer)
	fmt.Printf("  %-16s %d\n", settings.KeyHighScore, mgr.HighScore())
}

func runSettingsSet(_ *cobra.Command, args []string) {
	key, value := args[0], args[1]

	store, mgr := openSettings()
	defer store.Close()

	switch key {
	case settings.KeyBlindMode, settings.KeyStrictMode:
		v, err := strconv.ParseBool(value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s must be true or false\n", key)
			os.Exit(1)
		}
		if key == settings.KeyBlindMode {
			mgr.SetBlindMode(v)
		} else {
			mgr.SetStrictMode(v)
		}

	case settings.KeyScoreThreshold:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || !mgr.SetScoreThreshold(v) {
			fmt.Fprintf(os.Stderr, "Error: %s must be a number between %.0f and %.1f\n",
				key, settings.MinScoreThreshold, settings.MaxScoreThreshold)
			os.Exit(1)
		}

	case settings.KeyTimerDuration:
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 {
			fmt.Fprintf(os.Stderr, "Error: %s must be a non-negative number of seconds\n", key)
			os.Exit(1)
		}
		mgr.SetTimerDuration(v)

	case settings.KeyHighScore:
		fmt.Fprintln(os.Stderr, "Error: high_score cannot be set directly; use 'huematch settings reset-highscore'")
		os.Exit(1)

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown setting %q\n", key)
		fmt.Fprintln(os.Stderr, "Run 'huematch settings' to see available keys.")
		os.Exit(1)
	}

	fmt.Printf("%s = %s\n", key, value)
}

func runSettingsReset(_ *cobra.Command, _ []string) {
	store, mgr := openSettings()
	defer store.Close()

	if mgr.HighScore() == 0 {
		fmt.Println("High score is already 0.")
		return
	}

	if !flagSettingsYes {
		fmt.Printf("Reset high score (%d) to 0? [y/N] ", mgr.HighScore())
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return
		}
	}

	mgr.ResetHighScore()
	fmt.Println("High score reset.")
}
