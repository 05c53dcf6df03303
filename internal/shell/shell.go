// Package shell implements the interactive stopwatch loop.
//
// The shell reads single-letter commands from a prompt whose marker shows
// the running state ("*" running, ";" stopped). Durations for the change
// and offset commands are parsed with the durparse grammars; parse errors
// render as highlighted excerpts and the shell re-prompts. A second
// stopwatch runs while the main one is stopped, so restarting reports how
// long the break was. All commands are recorded in the session log,
// best-effort.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jpl-au/tempo/internal/durparse"
	"github.com/jpl-au/tempo/internal/log"
	"github.com/jpl-au/tempo/internal/render"
	"github.com/jpl-au/tempo/internal/stopwatch"
)

// readLimit caps how many bytes one prompt read consumes, so a stray
// paste cannot balloon memory or scroll the terminal.
const readLimit = 128

// Options configures a shell.
type Options struct {
	Name      string // initial stopwatch name, shown in the prompt
	Precision int    // display precision in fractional digits
	Version   string // shown in the splash line

	Color  bool // style messages and error excerpts
	Visual bool // draw caret underlines beneath parse errors
	TTY    bool // render the help page as markdown

	In  io.Reader // defaults to os.Stdin
	Out io.Writer // prompt and elapsed output, defaults to os.Stdout
	Err io.Writer // status and error messages, defaults to os.Stderr
}

// Shell is one interactive stopwatch session.
type Shell struct {
	sw        *stopwatch.Stopwatch
	sinceStop *stopwatch.Stopwatch
	name      string
	prec      int
	version   string
	tty       bool

	in  *bufio.Reader
	out io.Writer
	msg *render.Renderer
}

// New returns a shell ready to run.
func New(opts Options) *Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	prec := opts.Precision
	if prec < 0 {
		prec = 0
	} else if prec > durparse.MaxPrecision {
		prec = durparse.MaxPrecision
	}
	return &Shell{
		sw:        stopwatch.New(0, false),
		sinceStop: stopwatch.New(0, true),
		name:      opts.Name,
		prec:      prec,
		version:   opts.Version,
		tty:       opts.TTY,
		in:        bufio.NewReader(opts.In),
		out:       opts.Out,
		msg:       render.New(opts.Err, opts.Color, opts.Visual),
	}
}

// Run drives the prompt loop until the user quits or input ends.
func (s *Shell) Run() error {
	s.splash()
	log.StartSession(s.name)
	defer func() { log.EndSession(s.sw.Elapsed()) }()

	for {
		line, err := s.readln(s.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd, ok := parseCommand(line)
		if !ok {
			s.msg.Red(fmt.Sprintf("unrecognised command %q", line))
			continue
		}

		quit, err := s.update(cmd)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if quit {
			return nil
		}
		fmt.Fprintln(s.out)

		// The break stopwatch runs exactly while the main one is stopped.
		if s.sw.IsRunning() == s.sinceStop.IsRunning() {
			if s.sw.IsRunning() {
				s.sinceStop.Reset()
			} else {
				s.sinceStop.Toggle()
			}
		}
	}
}

// update executes one command, reporting whether the shell should exit.
func (s *Shell) update(cmd command) (bool, error) {
	switch cmd {
	case cmdHelp:
		s.printHelp()

	case cmdDisplay:
		fmt.Fprintln(s.out, render.Elapsed(s.sw.Elapsed(), s.prec))
		if s.sw.IsRunning() {
			s.msg.Green("running")
		} else {
			s.msg.Yellow("stopped")
		}

	case cmdToggle:
		now := time.Now()
		s.sw.ToggleAt(now)
		s.sinceStop.ToggleAt(now)
		if s.sw.IsRunning() {
			s.msg.Magenta("started stopwatch")
			s.msg.Cyan(render.Seconds(s.sinceStop.ElapsedAt(now), s.prec) + " since stopped")
			s.sinceStop.Reset()
		} else {
			s.msg.Magenta("stopped stopwatch")
		}
		log.Event("s").Elapsed(s.sw.Elapsed()).Detail("running", s.sw.IsRunning()).Write(nil)

	case cmdReset:
		s.sw.Reset()
		s.msg.Magenta("reset stopwatch")
		log.Event("r").Write(nil)

	case cmdChange:
		rd, err := s.readDur("new value? ", false)
		var perr *durparse.ParseError
		if errors.As(err, &perr) {
			log.Event("c").Elapsed(s.sw.Elapsed()).Write(perr)
			break
		}
		if err != nil {
			return false, err
		}
		if rd == nil {
			break
		}
		s.sw.Set(rd.Dur)
		s.msg.Magenta("updated elapsed time")
		log.Event("c").Elapsed(s.sw.Elapsed()).
			Detail("value", durparse.FormatClock(rd.Dur, s.prec)).Write(nil)

	case cmdOffset:
		rd, err := s.readDur("offset by? ", true)
		var perr *durparse.ParseError
		if errors.As(err, &perr) {
			log.Event("o").Elapsed(s.sw.Elapsed()).Write(perr)
			break
		}
		if err != nil {
			return false, err
		}
		if rd == nil {
			break
		}
		sign := "+"
		if rd.Neg {
			sign = "-"
			s.sw.Sub(rd.Dur)
			s.msg.Magenta("subtracted from elapsed time")
		} else {
			s.sw.Add(rd.Dur)
			s.msg.Magenta("added to elapsed time")
		}
		log.Event("o").Elapsed(s.sw.Elapsed()).
			Detail("offset", sign+durparse.FormatClock(rd.Dur, s.prec)).Write(nil)

	case cmdName:
		name, err := s.readln("new name? ")
		if err != nil {
			return false, err
		}
		s.name = name
		if name == "" {
			s.msg.Magenta("cleared stopwatch name")
		} else {
			s.msg.Magenta("updated stopwatch name")
		}

	case cmdPrecision:
		line, err := s.readln("new precision? ")
		if err != nil {
			return false, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 0 {
			s.msg.Red("invalid precision, expected an integer between 0 and " +
				strconv.Itoa(durparse.MaxPrecision))
			break
		}
		if n > durparse.MaxPrecision {
			s.prec = durparse.MaxPrecision
			s.msg.Yellow(fmt.Sprintf("precision clamped to %d", durparse.MaxPrecision))
		} else {
			s.prec = n
			s.msg.Magenta("updated precision")
		}

	case cmdSessions:
		s.printSessions()

	case cmdQuit:
		log.Event("q").Elapsed(s.sw.Elapsed()).Write(nil)
		return true, nil
	}
	return false, nil
}

func (s *Shell) printHelp() {
	if s.tty {
		if rendered, err := glamour.Render(helpPage, "dark"); err == nil {
			fmt.Fprint(s.out, rendered)
			return
		}
	}
	fmt.Fprint(s.out, helpPage)
}

func (s *Shell) printSessions() {
	sessions := log.RecentSessions(10)
	if len(sessions) == 0 {
		s.msg.Cyan("no recorded sessions")
		return
	}
	for _, sess := range sessions {
		name := sess.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(s.out, "%s  %s  %d commands  %s\n",
			time.Unix(sess.Start, 0).Format("2006-01-02 15:04"),
			durparse.FormatClock(sess.Elapsed, s.prec), sess.Commands, name)
	}
}

func (s *Shell) splash() {
	s.msg.Plain(fmt.Sprintf("tempo %s: terminal stopwatch", s.version))
	s.msg.Plain(`type "h" for help, "q" to quit`)
}

// prompt shows the stopwatch name and running state.
func (s *Shell) prompt() string {
	marker := ";"
	if s.sw.IsRunning() {
		marker = "*"
	}
	if s.name == "" {
		return marker + " "
	}
	return s.name + " " + marker + " "
}

// readDur prompts for one duration expression. An empty line returns
// (nil, nil), meaning "no change". Parse errors are rendered before being
// returned, so callers only need them for logging.
func (s *Shell) readDur(prompt string, allowNeg bool) (*durparse.ReadDur, error) {
	line, err := s.readln(prompt)
	if err != nil {
		return nil, err
	}

	rd, err := durparse.Parse(line, allowNeg)
	if err != nil {
		var perr *durparse.ParseError
		if errors.As(err, &perr) {
			s.msg.ParseError(perr)
		} else {
			s.msg.Red(err.Error())
		}
		return nil, err
	}
	return rd, nil
}

// readln prints the prompt and reads one line, trimmed and with control
// characters escaped. Reads stop after readLimit bytes.
func (s *Shell) readln(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	var buf []byte
	for len(buf) < readLimit {
		b, err := s.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				break
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		buf = append(buf, b)
	}
	return escapeControl(strings.TrimSpace(string(buf))), nil
}

// escapeControl renders control and other non-printable characters as
// escape sequences, so echoing input back never corrupts the terminal.
func escapeControl(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
