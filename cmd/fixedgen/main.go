// Command fixedgen generates a fixed-point type for the given number
// of integral and decimal bits.
//
//	go run ./cmd/fixedgen -i 24 -d 8
//
// writes i24f8_fixed.go with the type I24F8 stored in an int32.
// A format, which does not fit a native integer, is rejected.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/calebcase/oops"

	"github.com/avdva/qnum/internal/layout"
	"github.com/avdva/qnum/width"
)

type fixedType struct {
	Package, Name             string
	Storage, MulType, DivType string
	Integral, Decimal         int
	Bits, SignShift           int
	Factor, Mask, Half        int64
}

// fromFlags validates the format and computes the widths of its storage
// and of the intermediate domains of Mul and Div.
// An empty MulType or DivType means a 128-bit domain.
func fromFlags(integral, decimal int, pkg string) (f fixedType, err error) {
	storage, err := layout.Check(integral, decimal)
	if err != nil {
		return f, oops.Trace(err)
	}
	f = fixedType{
		Package:   pkg,
		Name:      fmt.Sprintf("I%dF%d", integral, decimal),
		Storage:   storage.TypeName(),
		Integral:  integral,
		Decimal:   decimal,
		Bits:      integral + decimal,
		SignShift: integral + decimal - 1,
		Factor:    1 << decimal,
		Mask:      1<<decimal - 1,
	}
	if decimal > 0 {
		f.Half = 1 << (decimal - 1)
	}
	if mul := width.MustSigned(2 * storage.Bits); mul.Native() {
		f.MulType = mul.TypeName()
	}
	if div := width.MustSigned(storage.Bits + decimal); div.Native() {
		f.DivType = div.TypeName()
	}
	return f, nil
}

func (f fixedType) fileName() string {
	return strings.ToLower(f.Name) + "_fixed.go"
}

func render(f fixedType) ([]byte, error) {
	tmpl, err := template.New("fixedTemplate").Parse(fixedTemplate)
	if err != nil {
		return nil, oops.Trace(err)
	}
	var source bytes.Buffer
	if err = tmpl.Execute(&source, f); err != nil {
		return nil, oops.Trace(err)
	}
	formatted, err := format.Source(source.Bytes())
	if err != nil {
		return nil, oops.Trace(err)
	}
	return formatted, nil
}

func main() {
	log.Default().SetFlags(log.Lshortfile)

	integral := flag.Int("i", 0, "number of integral bits, including the sign bit")
	decimal := flag.Int("d", 0, "number of decimal bits")
	pkg := flag.String("pkg", "fixed", "package name of the generated file")
	out := flag.String("o", ".", "output directory")
	flag.Parse()

	f, err := fromFlags(*integral, *decimal, *pkg)
	if err != nil {
		log.Fatalln(err)
	}
	source, err := render(f)
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(filepath.Join(*out, f.fileName()), source, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
