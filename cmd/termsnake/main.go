package main

import (
	"math/rand"
	"time"

	"github.com/termsnake/termsnake/cmd/termsnake/commands"
)

func main() {
	rand.Seed(time.Now().UnixNano())
	commands.Execute()
}
