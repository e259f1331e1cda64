// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/sicxedecode/internal/sicxe"
)

// Default register values used when neither the profile nor the command line
// sets a register.
const (
	DefaultPC    = 0x003000
	DefaultBase  = 0x006000
	DefaultIndex = 0x000090
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// DefaultProfile returns the built-in machine profile.
func DefaultProfile() Profile {
	return Profile{
		Registers: sicxe.Registers{
			PC: DefaultPC,
			B:  DefaultBase,
			X:  DefaultIndex,
		},
		Opcodes: sicxe.OpcodeTable{
			0x00: "LDA",
		},
		Memory: sicxe.MemoryMap{
			0x3030: 0x003600,
			0x3600: 0x103000,
			0x6390: 0x00C303,
			0xC303: 0x003030,
		},
	}
}
