// Package mdebug decodes the MIPS `.mdebug` symbol-table section embedded
// in legacy executables: it reads the fixed-layout SymbolicHeader, walks
// the file descriptor table, and for each compilation unit extracts its
// local symbol strings and the heuristics (detected language, base path)
// that turn a raw path into a full path. It does not understand STABS type
// strings themselves — see package stabs for that contract — and it never
// opens or loads an executable; the image bytes and the section's
// (file_offset, size) are handed to it by an external ELF/object-file
// loader (out of scope here, same as the original tool's design).
package mdebug

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"

	"github.com/cualquiercosa327/ccc"
)

// Symbol is one decoded local symbol: its string, value, STABS storage
// type/class, and the index into the auxiliary symbol table its record
// carries (meaning depends on storage type/class, decoded further by the
// STABS tokenizer — out of scope here).
type Symbol struct {
	String       string
	Value        int32
	StorageType  SymbolType
	StorageClass SymbolClass
	AuxIndex     uint32
}

// SymFileDescriptor is one compilation unit's worth of mdebug data: its
// file descriptor record, detected source language, the base/raw/full path
// heuristic described in §4.A, and its local symbols in on-disk order.
type SymFileDescriptor struct {
	Descriptor FileDescriptor

	RawPath            string
	DetectedLanguage   ccc.SourceLanguage
	BasePath           string
	FullPath           string
	Symbols            []Symbol
}

// SymbolTable is the decoded mdebug section: its header and the ordered
// list of compilation units it describes.
type SymbolTable struct {
	Header SymbolicHeader
	Files  []SymFileDescriptor
}

// ParseSymbolTable decodes the mdebug section found at
// image[section.FileOffset:section.FileOffset+section.Size]. It fails with
// ccc.MalformedHeader if the header's magic doesn't match,
// ccc.UnsupportedEndian if any file descriptor claims to be big-endian, and
// ccc.TruncatedBuffer if any indexed read falls outside image.
func ParseSymbolTable(image []byte, section ccc.SectionDescriptor) (*SymbolTable, error) {
	header, err := readSymbolicHeader(image, uint64(section.FileOffset))
	if err != nil {
		return nil, err
	}
	if header.Magic != expectedMagic {
		return nil, ccc.Fail(ccc.MalformedHeader, "mdebug.ParseSymbolTable",
			"invalid symbolic header magic %#x, expected %#x", uint16(header.Magic), uint16(expectedMagic))
	}

	table := &SymbolTable{Header: *header}

	for i := int32(0); i < header.FileDescriptorCount; i++ {
		fdOffset := uint64(header.FileDescriptorOffset) + uint64(i)*fileDescriptorSize
		fdHeader, err := readFileDescriptor(image, fdOffset)
		if err != nil {
			return nil, err
		}
		if fdHeader.BigEndian {
			return nil, ccc.Fail(ccc.UnsupportedEndian, "mdebug.ParseSymbolTable",
				"file descriptor %d is big-endian, not little endian or bad file descriptor table", i)
		}

		fd := SymFileDescriptor{Descriptor: *fdHeader}

		rawPath, err := readCString(image, uint64(header.LocalStringsOffset)+uint64(fdHeader.StringsOffset)+uint64(fdHeader.FilePathStringOffset))
		if err != nil {
			return nil, err
		}
		fd.RawPath = rawPath
		fd.DetectedLanguage = ccc.DetectLanguage(rawPath)

		for j := int32(0); j < fdHeader.SymbolCount; j++ {
			symOffset := uint64(header.LocalSymbolOffset) + uint64(fdHeader.IsymBase+j)*localSymbolSize
			rawSym, err := readLocalSymbol(image, symOffset)
			if err != nil {
				return nil, err
			}

			str, err := readCString(image, uint64(header.LocalStringsOffset)+uint64(fdHeader.StringsOffset)+uint64(rawSym.Iss))
			if err != nil {
				return nil, err
			}

			sym := Symbol{
				String:       str,
				Value:        rawSym.Value,
				StorageType:  SymbolType(ccc.PackedBits(rawSym.Packed, symStShift, symStWidth)),
				StorageClass: SymbolClass(ccc.PackedBits(rawSym.Packed, symScShift, symScWidth)),
				AuxIndex:     ccc.PackedBits(rawSym.Packed, symIndexShift, symIndexWidth),
			}
			fd.Symbols = append(fd.Symbols, sym)

			// Base-path heuristic (§4.A step 3, §9 Open Question 3):
			// compiler-specific, preserved exactly and not generalized.
			if fd.BasePath == "" && rawSym.Iss == uint32(fdHeader.FilePathStringOffset) &&
				sym.StorageType == SymLabel && len(fd.Symbols) > 2 {
				prev := fd.Symbols[len(fd.Symbols)-2]
				if prev.StorageType == SymLabel {
					fd.BasePath = prev.String
				}
			}
		}

		fd.FullPath = computeFullPath(fd.BasePath, fd.RawPath)

		// The procedure-descriptor table is intentionally not consumed
		// here — see §9 Open Question 1.

		table.Files = append(table.Files, fd)
	}

	return table, nil
}

// computeFullPath implements §4.A step 4: normalize separators, then use
// the raw path as-is if it is already absolute or there is no base path,
// else join base and raw and weakly canonicalize.
func computeFullPath(basePath, rawPath string) string {
	base := strings.ReplaceAll(basePath, "\\", "/")
	raw := strings.ReplaceAll(rawPath, "\\", "/")

	if base == "" || isAbsolutePath(raw) {
		return raw
	}

	return filepath.ToSlash(filepath.Clean(filepath.Join(base, raw)))
}

// isAbsolutePath reports whether raw starts with a leading '/' or a
// drive-letter prefix ("X:/").
func isAbsolutePath(raw string) bool {
	if strings.HasPrefix(raw, "/") {
		return true
	}
	if len(raw) >= 3 && raw[1] == ':' && raw[2] == '/' {
		return true
	}
	return false
}

func readSymbolicHeader(image []byte, offset uint64) (*SymbolicHeader, error) {
	raw, err := readStruct[symbolicHeaderRaw](image, offset, symbolicHeaderSize, "symbolic header")
	if err != nil {
		return nil, err
	}
	return &SymbolicHeader{
		Magic:                        raw.Magic,
		VersionStamp:                 raw.VersionStamp,
		LineNumberCount:              raw.LineNumberCount,
		LineNumbersSize:              raw.LineNumbersSize,
		LineNumbersOffset:            raw.LineNumbersOffset,
		DenseNumberCount:             raw.DenseNumberCount,
		DenseNumbersOffset:           raw.DenseNumbersOffset,
		ProcedureDescriptorCount:     raw.ProcDescCount,
		ProcedureDescriptorOffset:    raw.ProcDescOffset,
		LocalSymbolCount:             raw.LocalSymbolCount,
		LocalSymbolOffset:            raw.LocalSymbolsOffset,
		OptimizationSymbolCount:      raw.OptSymbolCount,
		OptimizationSymbolOffset:     raw.OptSymbolsOffset,
		AuxiliarySymbolCount:         raw.AuxSymbolCount,
		AuxiliarySymbolOffset:        raw.AuxSymbolsOffset,
		LocalStringsSize:             raw.LocalStringsSize,
		LocalStringsOffset:           raw.LocalStringsOffset,
		ExternalStringsSize:          raw.ExternStringsSize,
		ExternalStringsOffset:        raw.ExternStringsOffset,
		FileDescriptorCount:          raw.FileDescCount,
		FileDescriptorOffset:         raw.FileDescOffset,
		RelativeFileDescriptorCount:  raw.RelFileDescCount,
		RelativeFileDescriptorOffset: raw.RelFileDescOffset,
		ExternalSymbolCount:          raw.ExternSymbolCount,
		ExternalSymbolOffset:         raw.ExternSymbolsOffset,
	}, nil
}

func readFileDescriptor(image []byte, offset uint64) (*FileDescriptor, error) {
	raw, err := readStruct[fileDescriptorRaw](image, offset, fileDescriptorSize, "file descriptor")
	if err != nil {
		return nil, err
	}
	return &FileDescriptor{
		Address:              raw.Address,
		FilePathStringOffset: raw.FilePathStringOffset,
		StringsOffset:        raw.StringsOffset,
		SymbolStringsSize:    raw.CbSS,
		IsymBase:             raw.IsymBase,
		SymbolCount:          raw.SymbolCount,
		LineBase:             raw.IlineBase,
		LineCount:            raw.Cline,
		ProcedureBase:        int32(raw.IpdFirst),
		ProcedureCount:       int32(raw.Cpd),
		AuxiliaryBase:        raw.IauxBase,
		AuxiliaryCount:       raw.Caux,
		RelativeFileBase:     raw.RfdBase,
		RelativeFileCount:    raw.Crfd,
		Lang:                 ccc.PackedBits(raw.Packed, fdLangShift, fdLangWidth),
		Merge:                ccc.PackedBits(raw.Packed, fdMergeShift, fdMergeWidth) != 0,
		ReadIn:               ccc.PackedBits(raw.Packed, fdReadInShift, fdReadInWidth) != 0,
		BigEndian:            ccc.PackedBits(raw.Packed, fdBigEndianShift, fdBigEndianWidth) != 0,
	}, nil
}

func readLocalSymbol(image []byte, offset uint64) (*localSymbolRaw, error) {
	return readStruct[localSymbolRaw](image, offset, localSymbolSize, "local symbol")
}

// readStruct decodes a fixed-size little-endian record at offset, failing
// with ccc.TruncatedBuffer if it would read past the end of image.
func readStruct[T any](image []byte, offset uint64, size int, subject string) (*T, error) {
	if offset+uint64(size) > uint64(len(image)) {
		return nil, ccc.Fail(ccc.TruncatedBuffer, "mdebug.readStruct",
			"%s at offset %#x (size %#x) extends past end of image (len %#x)", subject, offset, size, len(image))
	}
	var out T
	if err := binary.Read(bytes.NewReader(image[offset:offset+uint64(size)]), binary.LittleEndian, &out); err != nil {
		return nil, ccc.Wrap(ccc.TruncatedBuffer, "mdebug.readStruct", err, "failed to decode %s at offset %#x", subject, offset)
	}
	return &out, nil
}

// readCString reads a NUL-terminated string starting at offset.
func readCString(image []byte, offset uint64) (string, error) {
	if offset > uint64(len(image)) {
		return "", ccc.Fail(ccc.TruncatedBuffer, "mdebug.readCString",
			"string offset %#x is past end of image (len %#x)", offset, len(image))
	}
	end := bytes.IndexByte(image[offset:], 0)
	if end < 0 {
		return "", ccc.Fail(ccc.TruncatedBuffer, "mdebug.readCString",
			"unterminated string starting at offset %#x", offset)
	}
	return string(image[offset : offset+uint64(end)]), nil
}
