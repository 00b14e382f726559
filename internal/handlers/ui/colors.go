package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Item Specific Colors
var (
	ItemNameColor = color.New(color.FgYellow).SprintFunc()
	CountColor    = color.New(color.FgWhite, color.Bold).SprintFunc()
	BarColor      = color.New(color.FgGreen).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Menu Colors
var (
	MenuOptionColor = color.New(color.FgCyan).SprintFunc()
)
