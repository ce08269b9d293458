package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/progression"
	"github.com/spf13/cobra"
)

var progressionKey string

func init() {
	progressionCmd.Flags().StringVar(&progressionKey, "key", "C", "key to resolve in")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(progressionCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [notes]",
	Short: "Finds chords sounding exactly the given notes",
	Long:  `Finds chords sounding exactly the given notes, e.g. search C E G B`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadEngine(); err != nil {
			return err
		}
		matches, err := eng.SearchNotes(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("no chord found")
			return nil
		}
		for _, name := range matches {
			fmt.Println(name)
		}
		return nil
	},
}

var chordCmd = &cobra.Command{
	Use:   "chord [name]",
	Short: "Shows a chord's voicings with degree labels",
	Long:  `Shows a chord's voicings with degree labels`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadEngine(); err != nil {
			return err
		}
		res, err := eng.LookupChord(args[0])
		if err != nil {
			return err
		}
		if res == nil {
			fmt.Println("no chord found")
			return nil
		}

		fmt.Println(res.Name)
		for _, lv := range res.Voicings {
			parts := make([]string, len(lv.Voicing.Frets))
			for i, fret := range lv.Voicing.Frets {
				switch {
				case fret < 0:
					parts[i] = "x"
				case lv.Labels[i] != nil:
					parts[i] = fmt.Sprintf("%v(%v)", fret, *lv.Labels[i])
				default:
					parts[i] = fmt.Sprintf("%v", fret)
				}
			}
			fmt.Printf("  %v\n", strings.Join(parts, " "))
		}
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [partial name]",
	Short: "Suggests chord names for partial input",
	Long:  `Suggests chord names for partial input`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadEngine(); err != nil {
			return err
		}
		suggestions, err := eng.Suggest(args[0])
		if err != nil {
			return err
		}
		for _, s := range suggestions {
			fmt.Println(s)
		}
		return nil
	},
}

var progressionCmd = &cobra.Command{
	Use:   "progression [id]",
	Short: "Resolves a progression template in a key",
	Long:  `Resolves a progression template in a key, e.g. progression ii-V-I --key Bb`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadEngine(); err != nil {
			return err
		}
		res, err := eng.ResolveTemplate(args[0], progressionKey)
		if err != nil {
			return err
		}
		if res == nil {
			fmt.Println("no progression found")
			return nil
		}

		printSlots := func(indent string, slots []progression.Resolved) {
			for _, r := range slots {
				fmt.Printf("%v%-5v %v\n", indent, r.Numeral, r.Name)
			}
		}
		printSlots("", res.Slots)
		for _, sec := range res.Sections {
			fmt.Printf("[%v]\n", sec.Name)
			printSlots("  ", sec.Slots)
		}
		for i, bar := range res.Bars {
			names := make([]string, len(bar))
			for j, r := range bar {
				names[j] = r.Name
			}
			fmt.Printf("bar %2d | %v\n", i+1, strings.Join(names, " "))
		}
		return nil
	},
}
