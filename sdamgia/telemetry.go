package sdamgia

import (
	"github.com/dinaprk/sdamgia-api/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sdamgia.client")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput directs full request/response dumps of every
// http exchange to the given output. Takes effect for clients
// constructed afterwards.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
