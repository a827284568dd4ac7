// Command stabsdump is a thin demonstration binary for the mdebug section
// reader: given a raw file and an explicit (offset, size) into it, it
// decodes the `.mdebug` section and prints the resulting SymbolTable as
// JSON. It does not sniff ELF/Mach-O/PE containers — finding the mdebug
// section within an object file is the job of an external loader, out of
// scope here (see spec Non-goals) — the caller supplies the offset and size
// directly, same as main.go does for GoReSym's PE/ELF/Mach-O entry points.
//
// Full STABS-to-AST translation additionally requires an externally
// tokenized stabs.StabsType graph this binary has no way to produce on its
// own (the STABS text tokenizer is out of scope, per spec §1); the
// -strict/-no-member-functions/-no-generated-member-functions/-json flags
// are parsed here and logged back so a caller embedding stabsdump's flag
// plumbing in a larger tool can see how translate.State gets wired from
// them.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cualquiercosa327/ccc"
	"github.com/cualquiercosa327/ccc/mdebug"
)

func main() {
	var (
		inPath                 = flag.String("in", "", "path to the raw file containing an .mdebug section")
		offset                 = flag.Uint("offset", 0, "file offset of the .mdebug section")
		size                   = flag.Uint("size", 0, "size in bytes of the .mdebug section")
		strict                 = flag.Bool("strict", false, "fail fast on recoverable errors instead of substituting Error nodes")
		noMemberFunctions      = flag.Bool("no-member-functions", false, "drop all member functions from struct/union output")
		noGeneratedMemberFuncs = flag.Bool("no-generated-member-functions", false, "drop member-function lists that look entirely compiler-generated")
		asJSON                 = flag.Bool("json", true, "print the decoded symbol table as JSON (the only supported mode)")
	)
	flag.Parse()

	if *inPath == "" {
		log.Fatal("stabsdump: -in is required")
	}

	image, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("stabsdump: %v", err)
	}

	flags := parserFlags(*strict, *noMemberFunctions, *noGeneratedMemberFuncs)
	log.Printf("stabsdump: parser flags = %#x", uint32(flags))

	table, err := mdebug.ParseSymbolTable(image, ccc.SectionDescriptor{
		FileOffset: uint32(*offset),
		Size:       uint32(*size),
	})
	if err != nil {
		log.Fatalf("stabsdump: failed to parse mdebug section: %v", err)
	}

	if !*asJSON {
		log.Fatal("stabsdump: only -json=true is supported")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(table); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parserFlags(strict, noMemberFunctions, noGeneratedMemberFunctions bool) ccc.ParserFlags {
	var flags ccc.ParserFlags
	if strict {
		flags |= ccc.StrictParsing
	}
	if noMemberFunctions {
		flags |= ccc.NoMemberFunctions
	}
	if noGeneratedMemberFunctions {
		flags |= ccc.NoGeneratedMemberFunctions
	}
	return flags
}
