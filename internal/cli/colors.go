package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	SuccessColor = color.New(color.FgGreen, color.Bold)
	ErrorColor   = color.New(color.FgRed, color.Bold)
	WarningColor = color.New(color.FgYellow, color.Bold)
	InfoColor    = color.New(color.FgCyan, color.Bold)
	TitleColor   = color.New(color.FgMagenta, color.Bold)
	LabelColor   = color.New(color.FgBlue, color.Bold)
)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	SuccessColor.Printf("✅ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	ErrorColor.Printf("❌ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	WarningColor.Printf("⚠️  "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	InfoColor.Printf("ℹ️  "+format+"\n", args...)
}

// PrintTitle prints a section title
func PrintTitle(format string, args ...interface{}) {
	TitleColor.Printf("🎙️  "+format+"\n", args...)
}

func PrintSeparator() {
	fmt.Println(strings.Repeat("─", 80))
}
