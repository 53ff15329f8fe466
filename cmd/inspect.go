package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(midiCmd)
	midiCmd.Flags().StringP("out", "o", "", "output .mid file (required)")
	midiCmd.Flags().Bool("arpeggio", false, "play the notes one after another")
	midiCmd.Flags().Int("octave", constants.DefaultOctave, "octave for tonics without one")
	midiCmd.MarkFlagRequired("out")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the notes started in a midi file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.Read(args[0])
		if err != nil {
			return err
		}
		keys := midi.NoteOnKeys(s)
		names := make([]string, 0, len(keys))
		for _, key := range keys {
			names = append(names, note.FromMidi(int(key)).String())
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
		return nil
	},
}

var midiCmd = &cobra.Command{
	Use:   "midi <chord name>",
	Short: "Writes a chord name like Dm7 to a midi file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		arpeggio, _ := cmd.Flags().GetBool("arpeggio")
		octave, _ := cmd.Flags().GetInt("octave")

		table, err := loadTable()
		if err != nil {
			return err
		}
		notes := table.FromName(args[0])
		if len(notes) == 0 {
			return fmt.Errorf("no chord for %q", args[0])
		}
		keys, err := midi.Keys(notes, octave)
		if err != nil {
			return err
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		opts := midi.DefaultOptions()
		opts.Arpeggio = arpeggio
		if err := midi.WriteChord(f, keys, opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s) to %s\n", args[0], strings.Join(notes, " "), out)
		return f.Close()
	},
}
