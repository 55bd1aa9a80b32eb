package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

func printBanner(name string) {
	_ = pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("LIGHT", pterm.NewStyle(pterm.FgCyan)),
		pterm.NewLettersFromStringWithStyle("LOCK", pterm.NewStyle(pterm.FgMagenta)),
	).Render()
	pterm.Info.Println(name)
}

func printSignature(version string) {
	cyan := color.New(color.FgHiCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite).SprintFunc()

	fmt.Println()
	fmt.Printf("%s : %s\n", cyan("Project    "), white("Light-Lock Gallery"))
	fmt.Printf("%s : %s\n", cyan("Version    "), white(version))
	fmt.Printf("%s : %s\n", cyan("Demo login "), white("lightlock users"))
	fmt.Println()
}
