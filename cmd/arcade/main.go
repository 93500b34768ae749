// arcade is a terminal arcade hosting grid games: 2048, Tetris and Snake.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show scores for a game
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/arcade.db)
//	--config-dir <dir>    - Directory holding t2048.yaml, tetris.yaml, snake.yaml
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/grid-arcade/internal/games/snake"
	_ "github.com/vovakirdan/grid-arcade/internal/games/t2048"
	_ "github.com/vovakirdan/grid-arcade/internal/games/tetris"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagConfigDir string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Grid Arcade - 2048, Tetris and Snake in your terminal",
	Long: `Grid Arcade hosts three grid games in the terminal:
2048, Tetris and Snake. Best and last scores are kept per game.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View scores

Examples:
  arcade list
  arcade play 2048
  arcade menu
  arcade serve --ssh :2222
  arcade scores snake`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyConfigDir(flagConfigDir)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory with per-game YAML configs")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (empty = no logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
