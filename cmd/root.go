package cmd

import (
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/watch"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Chord lookup",
	Long: `Builds chords from chord names or interval lists.

Set CHORDS_PATH to a JSON or YAML chord file to use it instead of the
packaged chord data.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadTable is the packaged table unless CHORDS_PATH names another file.
func loadTable() (*chord.Table, error) {
	path := constants.GetChordsPath()
	if path == "" {
		return chord.Default(), nil
	}
	return watch.Load(path)
}
