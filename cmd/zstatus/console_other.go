//go:build !windows

package main

// initConsole is a no-op outside Windows, terminals already speak ANSI
func initConsole() {}
