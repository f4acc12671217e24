// ledarcade drives games on an 8x8 MAX7219 LED matrix wired to a Raspberry
// Pi, steered by an analog joystick behind an MCP3008 ADC.
//
// Usage:
//
//	ledarcade list                - List available games
//	ledarcade play <game>         - Play a game on the matrix
//	ledarcade play <game> --driver term
//	                              - Play in a terminal simulator instead
//	ledarcade demo                - Exercise the matrix (rectangle, letter,
//	                                scrolling text)
//	ledarcade joytest             - Print joystick readings
//
// Global flags:
//
//	--config <path>  - Config YAML (pins, pacing); see internal/config
//	--seed <value>   - RNG seed for reproducible rounds (0 = time-based)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/led-arcade/internal/games/snake"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "ledarcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledarcade",
	Short: "LED Arcade - Games on an 8x8 LED matrix",
	Long: `LED Arcade drives retro games on a MAX7219 8x8 LED matrix attached
to a Raspberry Pi over bit-banged SPI, with an analog joystick (MCP3008)
as the controller.

Available commands:
  list     - Show all available games
  play     - Play a game on the matrix or in a terminal simulator
  demo     - Exercise the LED matrix
  joytest  - Print joystick readings

Examples:
  ledarcade list
  ledarcade play snake
  ledarcade play snake --driver term
  ledarcade demo
  ledarcade joytest`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(joytestCmd)
}
