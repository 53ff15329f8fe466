package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(namesCmd)
	namesCmd.Flags().Bool("aliases", false, "include aliases")
}

var chordCmd = &cobra.Command{
	Use:   "chord <type or intervals> [tonic]",
	Short: "Prints the notes of a chord type",
	Long: `Prints the notes of a chord type built on tonic, or its intervals when
no tonic is given. The type can also be a quoted interval list like "1 3 5 m7".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		var tonic string
		if len(args) == 2 {
			tonic = args[1]
		}
		notes := table.Chord(args[0], tonic)
		if len(notes) == 0 {
			return fmt.Errorf("no chord for %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(notes, " "))
		return nil
	},
}

var nameCmd = &cobra.Command{
	Use:   "name <chord name>...",
	Short: "Prints the notes of chord names like CMaj7",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		var missing []string
		for _, name := range args {
			notes := table.FromName(name)
			if len(notes) == 0 {
				missing = append(missing, name)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(notes, " "))
		}
		if len(missing) > 0 {
			return fmt.Errorf("no chord for %s", strings.Join(missing, ", "))
		}
		return nil
	},
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Lists the known chord types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		aliases, err := cmd.Flags().GetBool("aliases")
		if err != nil {
			return err
		}
		table, err := loadTable()
		if err != nil {
			return err
		}
		for _, name := range table.Names(aliases) {
			// the major triad has an empty alias
			if name == "" {
				name = `""`
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
