package core

import (
	"fmt"
	"io"

	"github.com/brandoncanaday/1730sh/commands"
)

const banner = ` _ _____ _____  ___      _
/ |___  |___ / / _ \ ___| |__
| |  / /  |_ \| | | / __| '_ \
| | / /  ___) | |_| \__ \ | | |
|_|/_/  |____/ \___/|___/_| |_|`

func printBanner(w io.Writer) {
	commands.ColorBoldCyan.Fprintln(w, banner)
	fmt.Fprintln(w, `Type "help" to see the built-in commands.`)
}
