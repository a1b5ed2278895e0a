package httpservice

import (
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/fx"
)

// Module is the name that prefixes configuration-time output from this module.
const Module = "HTTPService"

// Prepend returns "[module] template", the layout uber/fx uses for its own output.
func Prepend(module, template string) string {
	return "[" + module + "] " + template
}

// PrinterFunc adapts a Printf-style closure to fx.Printer.  No newline is added.
type PrinterFunc func(string, ...interface{})

func (pf PrinterFunc) Printf(template string, args ...interface{}) {
	pf(template, args...)
}

// NewPrinterWriter returns an fx.Printer that writes one line per message to w.
// A failed write panics.
func NewPrinterWriter(w io.Writer) fx.Printer {
	return PrinterFunc(func(template string, args ...interface{}) {
		if _, err := fmt.Fprintf(w, template+"\n", args...); err != nil {
			panic(err)
		}
	})
}

// NewModulePrinter prefixes every message sent to p with the module name.
// A nil p means DefaultPrinter().
func NewModulePrinter(module string, p fx.Printer) fx.Printer {
	if p == nil {
		p = DefaultPrinter()
	}

	return PrinterFunc(func(template string, args ...interface{}) {
		p.Printf(Prepend(module, template), args...)
	})
}

var defaultPrinter fx.Printer = log.New(os.Stderr, "", log.LstdFlags)

// DefaultPrinter is the stderr printer used when an fx.App supplies none.
func DefaultPrinter() fx.Printer {
	return defaultPrinter
}

// testLog is satisfied by *testing.T and *testing.B.
type testLog interface {
	Name() string
	Logf(string, ...interface{})
}

// TestLogger routes uber/fx output to a test's log and also provides that
// printer as the fx.Printer component consulted by ForViper, ProvideService,
// and ProvideClient.
func TestLogger(t testLog) fx.Option {
	var p fx.Printer = PrinterFunc(func(template string, args ...interface{}) {
		t.Logf(t.Name()+" "+template, args...)
	})

	return fx.Options(
		fx.Logger(p),
		fx.Provide(func() fx.Printer { return p }),
	)
}
