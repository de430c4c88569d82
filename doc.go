// Package rout converts textual disassembly dumps into word lists.
//
// A dump is free-form text in which data lines carry a hexadecimal base
// address followed by four 32-bit words. The words are attributed to four
// consecutive word-aligned addresses and collected into an Image, which can
// then be serialized as a count-prefixed plain list or as a JSON array
// terminated by a sentinel word.
//
// # Architecture Overview
//
//	rout/             Root package with the Image data model
//	├── dump/         Dump text parser
//	├── encode/       Plain and JSON serializers, file and stdout sinks
//	├── errors/       Structured error types
//	└── cmd/rout/     Command-line tool
//
// # Quick Start
//
//	img, err := dump.ParseFile("firmware.dump")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := encode.Render(img, encode.JSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text)
package rout
