package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dinaprk/sdamgia-api/lib/configutil"
	"github.com/dinaprk/sdamgia-api/lib/recognition"
	"github.com/dinaprk/sdamgia-api/lib/restyutil"
	"github.com/dinaprk/sdamgia-api/lib/serviceutil"
	"github.com/dinaprk/sdamgia-api/sdamgia"
)

type Config struct {
	GiaType        string `json:"gia_type"`
	Subject        string `json:"subject"`
	FormulaWorkers int    `json:"formula_workers"`
}

var giaType *string
var subject *string
var debugHttp *bool

func init() {
	giaType = rootCmd.PersistentFlags().String("gia", "", "Override the exam type (ege or oge).")
	subject = rootCmd.PersistentFlags().String("subject", "", "Override the subject domain.")
	debugHttp = rootCmd.PersistentFlags().Bool("debug-http", false, "Dump http messages to .dev/resty/sdamgia.")
}

func newClient(ctx context.Context) *sdamgia.Client {
	cfg, err := configutil.ReadRecursively[Config]("sdamgia.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	if *debugHttp {
		output, err := restyutil.NewFilesystemOutput(".dev/resty/sdamgia")
		if err != nil {
			serviceutil.Fatal("failed to prepare http dump directory", err)
		}
		sdamgia.SetRestyInstrumentOutput(output)
	}

	opts := sdamgia.ClientOptions{
		GiaType:        sdamgia.GiaType(cfg.GiaType),
		Subject:        sdamgia.Subject(cfg.Subject),
		FormulaWorkers: cfg.FormulaWorkers,
		Recognizer:     recognition.NewTesseractBackend(),
	}
	if *giaType != "" {
		opts.GiaType = sdamgia.GiaType(*giaType)
	}
	if *subject != "" {
		opts.Subject = sdamgia.Subject(*subject)
	}

	client, err := sdamgia.NewClient(ctx, opts)
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	return client
}

func printJson(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		serviceutil.Fatal("failed to marshal output", err)
	}
	fmt.Println(string(out))
}
