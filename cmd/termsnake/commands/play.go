package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/termsnake/termsnake/rules"
	"github.com/termsnake/termsnake/term"
	"github.com/termsnake/termsnake/worker"
)

var playCmd = &cobra.Command{
	Use:    "play",
	Short:  "play a game of snake in the current terminal",
	PreRun: func(c *cobra.Command, args []string) { setup() },
	Run: func(*cobra.Command, []string) {
		if err := playGame(); err != nil {
			log.WithError(err).Error("game ended with fatal error")
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func playGame() error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	// the grid is whatever the terminal is when the game starts
	width, height := screen.Size()
	game, err := rules.NewGame(height, width, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	return worker.Runner(screen, game, term.Relay(screen), worker.TickInterval)
}
