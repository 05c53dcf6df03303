// command.go defines the shell's command table.
//
// Separated from shell.go so the mapping between typed input and commands
// stays in one place, next to the help page that documents it.

package shell

import "strings"

// command enumerates everything the shell can be asked to do.
type command int

const (
	cmdHelp command = iota
	cmdDisplay
	cmdToggle
	cmdReset
	cmdChange
	cmdOffset
	cmdName
	cmdPrecision
	cmdSessions
	cmdQuit
)

// String returns the letter the user types for the command.
func (c command) String() string {
	switch c {
	case cmdHelp:
		return "h"
	case cmdDisplay:
		return ""
	case cmdToggle:
		return "s"
	case cmdReset:
		return "r"
	case cmdChange:
		return "c"
	case cmdOffset:
		return "o"
	case cmdName:
		return "n"
	case cmdPrecision:
		return "p"
	case cmdSessions:
		return "l"
	case cmdQuit:
		return "q"
	}
	return "?"
}

// parseCommand maps a trimmed input line to a command. Matching is
// case-insensitive; an empty line displays the elapsed time.
func parseCommand(line string) (command, bool) {
	switch strings.ToLower(line) {
	case "h":
		return cmdHelp, true
	case "":
		return cmdDisplay, true
	case "s":
		return cmdToggle, true
	case "r":
		return cmdReset, true
	case "c":
		return cmdChange, true
	case "o":
		return cmdOffset, true
	case "n":
		return cmdName, true
	case "p":
		return cmdPrecision, true
	case "l":
		return cmdSessions, true
	case "q":
		return cmdQuit, true
	}
	return 0, false
}

// helpPage is the command reference shown by "h", rendered as markdown on
// terminals.
const helpPage = `| command | description            |
| ------- | ---------------------- |
| h       | print this message     |
| <enter> | display elapsed time   |
| s       | toggle stopwatch       |
| r       | reset stopwatch        |
| c       | change elapsed time    |
| o       | offset elapsed time    |
| n       | name stopwatch         |
| p       | set display precision  |
| l       | list recent sessions   |
| q       | quit                   |
`
