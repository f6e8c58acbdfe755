package main

import (
	"errors"

	"github.com/zyedidia/clipboard"
)

var clipAvailable bool

var errNoClipboard = errors.New("no system clipboard available")

// ClipInitialize probes for a usable system clipboard. The error is not
// fatal: without a clipboard, yanking reports the failure in the status bar
// and the viewer keeps working.
func ClipInitialize() error {
	err := clipboard.Initialize()
	clipAvailable = err == nil
	return err
}

// ClipWrite puts yanked text on the system clipboard.
func ClipWrite(content string) error {
	if !clipAvailable {
		return errNoClipboard
	}
	return clipboard.WriteAll(content, "clipboard")
}
