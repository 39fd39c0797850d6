// Command binfmtdump decodes a hex-encoded buffer against a binfmt format
// string and prints each field's value, or locates a single field's byte
// offset. It is host-side tooling, not part of the binfmt library itself.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/binfmt/binfmt"
)

func main() {
	format := flag.String("format", "", "binfmt format string, e.g. \"<Ixh\"")
	hexInput := flag.String("hex", "", "hex-encoded buffer to decode")
	field := flag.Int("field", -1, "if >= 0, print only this field's byte offset instead of decoding")
	flag.Parse()

	if *format == "" || *hexInput == "" {
		fmt.Println("Usage: binfmtdump -format <format> -hex <hex bytes> [-field N]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	buf, err := hex.DecodeString(*hexInput)
	if err != nil {
		log.Fatalf("decoding -hex: %v", err)
	}

	if *field >= 0 {
		offset, err := binfmt.Locate(buf, *format, *field)
		if err != nil {
			log.Fatalf("locate: %v", err)
		}
		fmt.Printf("field %d starts at byte offset %d\n", *field, offset)
		return
	}

	values, consumed, err := binfmt.Unpack(buf, *format)
	if err != nil {
		log.Fatalf("unpack: %v", err)
	}

	fmt.Printf("consumed %d byte(s), %d field(s):\n", consumed, len(values))
	for i, v := range values {
		fmt.Printf("  [%d] %-8s %s\n", i, v.Kind(), formatValue(v))
	}
}

func formatValue(v binfmt.Value) string {
	switch v.Kind() {
	case binfmt.KindInt8:
		return fmt.Sprintf("%d", v.Int8())
	case binfmt.KindUint8:
		return fmt.Sprintf("%d", v.Uint8())
	case binfmt.KindInt16:
		return fmt.Sprintf("%d", v.Int16())
	case binfmt.KindUint16:
		return fmt.Sprintf("%d", v.Uint16())
	case binfmt.KindInt32:
		return fmt.Sprintf("%d", v.Int32())
	case binfmt.KindUint32:
		return fmt.Sprintf("%d", v.Uint32())
	case binfmt.KindInt64:
		return fmt.Sprintf("%d", v.Int64())
	case binfmt.KindUint64:
		return fmt.Sprintf("%d", v.Uint64())
	case binfmt.KindFloat16, binfmt.KindFloat32:
		return fmt.Sprintf("%g", v.Float32())
	case binfmt.KindFloat64:
		return fmt.Sprintf("%g", v.Float64())
	case binfmt.KindBlob128:
		b := v.Blob128()
		return hex.EncodeToString(b[:])
	default:
		return "?"
	}
}
