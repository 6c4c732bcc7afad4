// Package rom reads and writes TD4 program images.
//
// Two formats are understood. A binary image is the raw memory words, one
// byte per address. A hex image is text: ';' starts a comment, words are
// separated by spaces or commas and use Go integer syntax (0x30, 0b0011_0000,
// 48), and '@addr:' moves the load address.
package rom

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/td4/cpu"
)

// Format of a program image.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_AUTO   = Format(0) // auto
	FORMAT_BINARY = Format(1) // bin
	FORMAT_HEX    = Format(2) // hex
)

// ParseFormat parses "auto", "bin" or "hex".
func ParseFormat(name string) (format Format, err error) {
	for _, format = range []Format{FORMAT_AUTO, FORMAT_BINARY, FORMAT_HEX} {
		if format.String() == name {
			return
		}
	}

	format = FORMAT_AUTO
	err = ErrFormat(name)
	return
}

// Load reads the image at path. FORMAT_AUTO selects binary for .bin and
// .rom files, and hex for everything else.
func Load(path string, format Format) (mem cpu.Memory, err error) {
	if format == FORMAT_AUTO {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".bin", ".rom":
			format = FORMAT_BINARY
		default:
			format = FORMAT_HEX
		}
	}

	inf, err := os.Open(path)
	if err != nil {
		err = errors.Wrap(err, "load image")
		return
	}
	defer inf.Close()

	mem, err = Read(inf, format)
	if err != nil {
		err = errors.Wrapf(err, "%v", path)
	}

	return
}

// Read reads a whole image from r. FORMAT_AUTO treats the image as hex if
// it is entirely printable text, and binary otherwise.
func Read(r io.Reader, format Format) (mem cpu.Memory, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		err = errors.Wrap(err, "read image")
		return
	}

	if format == FORMAT_AUTO {
		format = FORMAT_BINARY
		if isText(data) {
			format = FORMAT_HEX
		}
	}

	mem = cpu.NewMemory()

	switch format {
	case FORMAT_BINARY:
		err = mem.Load(data)
	case FORMAT_HEX:
		err = parseHex(mem, string(data))
	default:
		err = ErrFormat(format.String())
	}

	if err != nil {
		mem = nil
	}

	return
}

// Parse parses a hex image.
func Parse(text string) (mem cpu.Memory, err error) {
	return Read(strings.NewReader(text), FORMAT_HEX)
}

func isText(data []byte) bool {
	if len(bytes.TrimSpace(data)) == 0 {
		return false
	}

	for _, b := range data {
		switch {
		case b == '\n' || b == '\r' || b == '\t':
		case b >= 0x20 && b < 0x7f:
		default:
			return false
		}
	}

	return true
}

func parseHex(mem cpu.Memory, text string) (err error) {
	addr := 0

	for n, line := range strings.Split(text, "\n") {
		lineno := n + 1

		if index := strings.IndexByte(line, ';'); index >= 0 {
			line = line[:index]
		}
		line = strings.ReplaceAll(line, ",", " ")

		for _, token := range strings.Fields(line) {
			if strings.HasPrefix(token, "@") && strings.HasSuffix(token, ":") {
				var origin uint64
				origin, err = strconv.ParseUint(token[1:len(token)-1], 0, 8)
				if err != nil {
					return ErrSyntax{LineNo: lineno, Token: token, Err: err}
				}
				addr = int(origin)
				continue
			}

			var word uint64
			word, err = strconv.ParseUint(token, 0, 8)
			if err != nil {
				return ErrSyntax{LineNo: lineno, Token: token, Err: err}
			}

			if addr >= len(mem) {
				return ErrSyntax{LineNo: lineno, Token: token, Err: cpu.ErrImageSize}
			}

			mem[addr] = uint8(word)
			addr++
		}
	}

	return
}

// FormatHex renders mem as a hex image, one word per line with its
// disassembly as a comment.
func FormatHex(mem cpu.Memory) string {
	var sb strings.Builder

	sb.WriteString("; td4 program image\n")
	for addr, word := range mem {
		fmt.Fprintf(&sb, "0x%02x ; %2d: %v\n", word, addr, cpu.Disassemble(word))
	}

	return sb.String()
}
