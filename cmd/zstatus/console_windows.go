//go:build windows

package main

import (
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32               = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
	procGetConsoleMode     = kernel32.NewProc("GetConsoleMode")
	procSetConsoleMode     = kernel32.NewProc("SetConsoleMode")
	procGetStdHandle       = kernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = uintptr(-11 & 0xFFFFFFFF)
	enableVirtualTerminalProcessing = 0x0004
	cpUTF8                          = 65001
)

// consoleInitializedEnv is set once the console has been switched to
// UTF-8 with escape processing, so nested invocations skip the calls
const consoleInitializedEnv = "ZSTATUS_CONSOLE_INITIALIZED"

// initConsole switches the console to UTF-8 and enables ANSI escape sequences
func initConsole() {
	if os.Getenv(consoleInitializedEnv) == "1" {
		return
	}

	procSetConsoleOutputCP.Call(cpUTF8)

	stdout, _, _ := procGetStdHandle.Call(stdOutputHandle)
	if stdout != 0 {
		var mode uint32
		procGetConsoleMode.Call(stdout, uintptr(unsafe.Pointer(&mode)))
		procSetConsoleMode.Call(stdout, uintptr(mode|enableVirtualTerminalProcessing))
	}
	os.Setenv(consoleInitializedEnv, "1")
}
