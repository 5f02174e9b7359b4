// Package ui renders the CLI's progress and status output.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// headerWidth is the banner line length.
const headerWidth = 60

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgBlue)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	stepColor    = color.New(color.FgWhite, color.Bold)
)

// Header prints a banner with the given title.
func Header(title string) {
	line := strings.Repeat("=", headerWidth)
	headerColor.Fprintln(os.Stderr, line)
	headerColor.Fprintln(os.Stderr, center(title, headerWidth))
	headerColor.Fprintln(os.Stderr, line)
}

// Step prints a numbered progress step.
func Step(n, total int, msg string) {
	stepColor.Fprintf(os.Stderr, "[%d/%d] %s\n", n, total, msg)
}

// Success prints a success line.
func Success(msg string) {
	successColor.Fprintf(os.Stderr, "✓ %s\n", msg)
}

// Info prints an informational line.
func Info(msg string) {
	infoColor.Fprintf(os.Stderr, "• %s\n", msg)
}

// Warning prints a warning line.
func Warning(msg string) {
	warningColor.Fprintf(os.Stderr, "! %s\n", msg)
}

// Error prints an error line.
func Error(msg string) {
	errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// BlueText prints plain blue text.
func BlueText(msg string) {
	infoColor.Fprintln(os.Stderr, msg)
}

// YellowText prints plain yellow text.
func YellowText(msg string) {
	warningColor.Fprintln(os.Stderr, msg)
}

// center left-pads text to sit in the middle of width. Text longer than
// width is returned unchanged.
func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return fmt.Sprintf("%s%s", strings.Repeat(" ", pad), text)
}
