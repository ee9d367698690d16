package main

import (
	"github.com/dinaprk/sdamgia-api/cmd/sdamgia-cli/commands"
	"github.com/dinaprk/sdamgia-api/lib/serviceutil"
	"github.com/dinaprk/sdamgia-api/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.SetupFromEnv(ctx, "sdamgia-cli")
	telemetry.InitSlog(true)
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
