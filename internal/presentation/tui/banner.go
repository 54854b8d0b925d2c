package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner writes the najia banner, coloured only on a terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	if !IsTerminal(w) {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	p := out.Profile
	s1 := out.String("  ☰ ☱ ☲ ☳  najia").Foreground(p.Color("#818cf8")).Bold()
	s2 := out.String("  ☴ ☵ ☶ ☷  na-jia hexagram engine").Foreground(p.Color("#c084fc"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w)
}

var verdictColors = map[domain.Verdict]string{
	domain.Prosperous: "#22c55e",
	domain.Balanced:   "#eab308",
	domain.Weak:       "#ef4444",
}

// Verdict styles a verdict word for the given writer.
func Verdict(w io.Writer, v domain.Verdict) string {
	if !IsTerminal(w) {
		return string(v)
	}
	out := termenv.NewOutput(w)
	return out.String(string(v)).Foreground(out.Profile.Color(verdictColors[v])).Bold().String()
}
