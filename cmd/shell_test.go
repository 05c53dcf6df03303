package cmd

import "testing"

func TestShell(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.runStdin("q\n")
		env.contains(out, "terminal stopwatch")
	})

	t.Run("display uses configured precision", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "display.precision", "4")

		out := env.runStdin("\nq\n")
		env.contains(out, "0:00:00.0000")
	})

	t.Run("precision flag overrides config", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "display.precision", "4")

		out := env.runStdin("\nq\n", "--precision", "0")
		env.contains(out, "0:00:00\n")
	})

	t.Run("name flag shows in prompt", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.runStdin("q\n", "--name", "work")
		env.contains(out, "work ; ")
	})

	t.Run("change then display", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.runStdin("c\n1:30\n\nq\n")
		env.contains(out, "updated elapsed time")
		env.contains(out, "0:01:30.00")
	})

	t.Run("parse error does not exit", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.runStdin("o\n1:2:3:4\nq\n")
		env.contains(out, "unexpected colon")
	})
}

func TestShell_SessionLog(t *testing.T) {
	t.Run("sessions recorded", func(t *testing.T) {
		env := newTestEnv(t)

		env.runStdin("s\ns\nq\n", "--name", "logged")

		out := env.run("log")
		env.contains(out, "logged")
		env.contains(out, "3 commands")
	})

	t.Run("no-log disables recording", func(t *testing.T) {
		env := newTestEnv(t)

		env.runStdin("s\ns\nq\n", "--no-log")

		out := env.run("log")
		env.contains(out, "no recorded sessions")
	})
}
