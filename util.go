package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	stdout io.Writer = color.Output
	stderr io.Writer = color.Error

	errorPrefix   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningPrefix = color.New(color.FgMagenta, color.Bold).SprintFunc()
)

func Error(msg string, ap ...interface{}) {
	fmt.Fprint(stderr, "exprtree: ", errorPrefix("error:"), " ")
	fmt.Fprintf(stderr, msg, ap...)
	fmt.Fprint(stderr, "\n")
}

func Warning(msg string, ap ...interface{}) {
	fmt.Fprint(stderr, "exprtree: ", warningPrefix("warning:"), " ")
	fmt.Fprintf(stderr, msg, ap...)
	fmt.Fprint(stderr, "\n")
}

func Info(msg string, ap ...interface{}) {
	fmt.Fprint(stdout, "exprtree: ")
	fmt.Fprintf(stdout, msg, ap...)
	fmt.Fprint(stdout, "\n")
}
