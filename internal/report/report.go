// Package report writes decoded instructions as a human readable text report.
package report

import (
	"fmt"
	"io"

	"github.com/retroenv/sicxedecode/internal/sicxe"
	"github.com/retroenv/sicxedecode/internal/translate"
)

// Writer writes instruction reports.
type Writer struct {
	translator *translate.Translator
	writer     io.Writer
}

// New creates a new report writer.
func New(writer io.Writer, translator *translate.Translator) *Writer {
	return &Writer{
		translator: translator,
		writer:     writer,
	}
}

type line struct {
	label string
	value string
}

// Write writes the report of a decoded instruction. The lines are always
// written in the same order, optional lines are omitted when the
// instruction has no target address or no memory value.
func (w Writer) Write(ins *sicxe.Instruction) error {
	fieldName := "disp"
	targetFormat := "%04X"
	if ins.Format == sicxe.Format4 {
		fieldName = "addr"
		targetFormat = "0x%05X"
	}

	lines := []line{
		{w.translator.Sprintf("Binary"), ins.Binary()},
		{w.translator.Sprintf("Opcode"), ins.OpcodeHex()},
		{"nixbpe", ins.Flags.String()},
		{fieldName, ins.FieldBinary()},
		{fieldName + " hex", ins.FieldHex()},
	}

	if target, ok := ins.TargetAddress(); ok {
		lines = append(lines,
			line{w.translator.Sprintf("Target Address"), fmt.Sprintf(targetFormat, target)},
			line{w.translator.Sprintf("Calculation"), ins.Trace},
		)
		if value, ok := ins.MemoryValue(); ok {
			lines = append(lines, line{w.translator.Sprintf("Register A"), fmt.Sprintf("%06X", value)})
		}
	} else {
		lines = append(lines, line{
			w.translator.Sprintf("Target Address"),
			w.translator.Sprintf("none (no rule for addressing mode)"),
		})
	}

	lines = append(lines,
		line{w.translator.Sprintf("Addressing mode"), ins.Mode},
		line{w.translator.Sprintf("Format"), fmt.Sprintf("%d", ins.Format)},
		line{"SIC/SICXE", ins.Machine.String()},
		line{w.translator.Sprintf("Mnemonic"), ins.Mnemonic},
	)

	for _, l := range lines {
		if _, err := fmt.Fprintf(w.writer, "%s: %s\n", l.label, l.value); err != nil {
			return fmt.Errorf("writing report line: %w", err)
		}
	}
	return nil
}

// WriteHeader writes the separator line that precedes the report of a case.
func (w Writer) WriteHeader(index int, hex string) error {
	if _, err := fmt.Fprintf(w.writer, "\n---- %d: [%s]\n", index, hex); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	return nil
}

// WriteError writes a decoding failure in place of a report.
func (w Writer) WriteError(hex string, err error) error {
	if _, err := fmt.Fprintf(w.writer, "%s: %s: %v\n", w.translator.Sprintf("Error"), hex, err); err != nil {
		return fmt.Errorf("writing report error: %w", err)
	}
	return nil
}
