package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/retroenv/sicxedecode/internal/sicxe"
)

// ErrInvalidProfile is returned for machine profiles with invalid content.
var ErrInvalidProfile = errors.New("invalid machine profile")

// Profile describes the machine a decoder works on.
type Profile struct {
	Registers sicxe.Registers
	Opcodes   sicxe.OpcodeTable
	Memory    sicxe.MemoryMap
}

// profileFile is the TOML representation of a profile. Map keys are integers
// in Go literal syntax, TOML only allows string keys.
type profileFile struct {
	Registers struct {
		PC    *int64 `toml:"pc"`
		Base  *int64 `toml:"base"`
		Index *int64 `toml:"index"`
	} `toml:"registers"`
	Opcodes map[string]string `toml:"opcodes"`
	Memory  map[string]int64  `toml:"memory"`
}

// LoadProfile reads a TOML machine profile from a file.
func LoadProfile(path string) (Profile, error) {
	var file profileFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Profile{}, fmt.Errorf("decoding profile file '%s': %w", path, err)
	}
	return buildProfile(file, meta)
}

// ParseProfile parses a TOML machine profile.
func ParseProfile(data string) (Profile, error) {
	var file profileFile
	meta, err := toml.Decode(data, &file)
	if err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return buildProfile(file, meta)
}

// buildProfile converts the decoded file into a profile. Sections that are
// not present keep their built-in values.
func buildProfile(file profileFile, meta toml.MetaData) (Profile, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Profile{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidProfile, strings.Join(keys, ", "))
	}

	profile := DefaultProfile()

	for _, reg := range []struct {
		name  string
		value *int64
		dest  *uint32
	}{
		{"pc", file.Registers.PC, &profile.Registers.PC},
		{"base", file.Registers.Base, &profile.Registers.B},
		{"index", file.Registers.Index, &profile.Registers.X},
	} {
		if reg.value == nil {
			continue
		}
		if *reg.value < 0 || *reg.value > sicxe.AddressMask {
			return Profile{}, fmt.Errorf("%w: register %s value %d out of range", ErrInvalidProfile, reg.name, *reg.value)
		}
		*reg.dest = uint32(*reg.value)
	}

	if meta.IsDefined("opcodes") {
		opcodes, err := parseOpcodes(file.Opcodes)
		if err != nil {
			return Profile{}, err
		}
		profile.Opcodes = opcodes
	}

	if meta.IsDefined("memory") {
		memory, err := parseMemory(file.Memory)
		if err != nil {
			return Profile{}, err
		}
		profile.Memory = memory
	}

	return profile, nil
}

func parseOpcodes(entries map[string]string) (sicxe.OpcodeTable, error) {
	opcodes := make(sicxe.OpcodeTable, len(entries))
	for key, name := range entries {
		opcode, err := parseKey(key, sicxe.OpcodeMask)
		if err != nil {
			return nil, fmt.Errorf("%w: opcode %w", ErrInvalidProfile, err)
		}
		if opcode&^sicxe.OpcodeMask != 0 {
			return nil, fmt.Errorf("%w: opcode %s is not a multiple of 4", ErrInvalidProfile, key)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: opcode %s has an empty mnemonic", ErrInvalidProfile, key)
		}
		opcodes[uint8(opcode)] = strings.ToUpper(name)
	}
	return opcodes, nil
}

func parseMemory(entries map[string]int64) (sicxe.MemoryMap, error) {
	memory := make(sicxe.MemoryMap, len(entries))
	for key, value := range entries {
		address, err := parseKey(key, sicxe.AddressMask)
		if err != nil {
			return nil, fmt.Errorf("%w: memory address %w", ErrInvalidProfile, err)
		}
		if value < 0 || value > sicxe.AddressMask {
			return nil, fmt.Errorf("%w: memory value %d at %s out of range", ErrInvalidProfile, value, key)
		}
		memory[uint32(address)] = uint32(value)
	}
	return memory, nil
}

// parseKey parses an integer table key in Go literal syntax.
func parseKey(key string, limit uint64) (uint64, error) {
	value, err := strconv.ParseUint(key, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("key '%s' is not a number: %w", key, err)
	}
	if value > limit {
		return 0, fmt.Errorf("key '%s' exceeds 0x%X", key, limit)
	}
	return value, nil
}
