package telemetry

import (
	"context"
	"os"
	"testing"

	"github.com/dinaprk/sdamgia-api/lib/configutil"
)

var setupTestEnvironments = map[string]bool{}

// SetupForTesting initializes telemetry once per service name across a
// test binary. When no telemetry.json5 exists the test runs without
// exporters and the returned cleanup is a no-op.
func SetupForTesting(t testing.TB, serviceName string) func() {
	_, setupAlready := setupTestEnvironments[serviceName]
	if setupAlready {
		return func() {}
	}
	setupTestEnvironments[serviceName] = true

	InitSlog(true)

	err := SetupFromEnv(context.Background(), serviceName)
	if os.IsNotExist(err) {
		return func() {}
	}
	if err != nil {
		t.Fatal(err)
	}

	return func() {
		err := Shutdown(context.Background())
		if err != nil {
			t.Fatal(err)
		}
	}
}

// SetupFromEnv configures exporters from the nearest telemetry.json5,
// looked up from the working directory towards the root.
func SetupFromEnv(ctx context.Context, serviceName string) error {
	config, err := configutil.ReadRecursively[config]("telemetry.json5")
	if err != nil {
		return err
	}
	return Setup(ctx, serviceName, config)
}
