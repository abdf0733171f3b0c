package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Loess.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Earthy gradient (amber to moss)
	s1 := termenv.String("  _                        ").Foreground(p.Color("#f59e0b"))
	s2 := termenv.String(" | |    ___   ___  ___ ___ ").Foreground(p.Color("#d97706"))
	s3 := termenv.String(" | |   / _ \\ / _ \\/ __/ __|").Foreground(p.Color("#b45309"))
	s4 := termenv.String(" | |__| (_) |  __/\\__ \\__ \\").Foreground(p.Color("#65a30d"))
	s5 := termenv.String(" |_____\\___/ \\___||___/___/").Foreground(p.Color("#4d7c0f"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println("  " + termenv.String("live content collections v"+version).Faint().String())
	fmt.Println()
}
