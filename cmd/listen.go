package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI input in real time",
	Long:  `Names chords played on a MIDI input in real time`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadEngine(); err != nil {
			return err
		}
		return listen()
	},
}

func listen() error {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		return fmt.Errorf("no MIDI input port: %w", err)
	}
	logger.Info("listening", "port", in.String())

	var mu sync.Mutex
	onNotes := make(map[uint8]bool)

	// wait for the chord to settle before looking it up
	deb := debounce.New(80 * time.Millisecond)
	report := func() {
		mu.Lock()
		keys := util.SortedKeys(onNotes)
		mu.Unlock()
		if len(keys) == 0 {
			return
		}

		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = pitch.FromMidi(int(k)).String()
		}
		noteText := strings.Join(names, " ")

		matches, err := eng.SearchNotes(noteText)
		if err != nil {
			logger.Error("lookup failed", "notes", noteText, "err", err)
			return
		}
		if len(matches) == 0 {
			fmt.Printf("%v -> ?\n", noteText)
			return
		}
		fmt.Printf("%v -> %v\n", noteText, strings.Join(matches, ", "))
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			deb(report)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			deb(report)
		}
	})
	if err != nil {
		return fmt.Errorf("listening to MIDI port: %w", err)
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
