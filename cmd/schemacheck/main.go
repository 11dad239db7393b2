// Command schemacheck valida payloads JSON contra los shapes de la API del POS.
//
//	schemacheck -list
//	schemacheck -schema order_create pedido.json otro.json
//	cat gasto.json | schemacheck -schema daily_expense_create
//	schemacheck -schema daily_report_response -pdf reporte.pdf reporte.json
//	schemacheck -image foto.png
//
// Imprime un reporte JSON por payload en stdout. Sale con código 1 si alguno es inválido.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/schema"
	"github.com/jhoicas/restaurante-pos/internal/application/upload"
	"github.com/jhoicas/restaurante-pos/internal/application/validation"
	"github.com/jhoicas/restaurante-pos/internal/domain"
	infrapdf "github.com/jhoicas/restaurante-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-pos/pkg/config"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// report resultado de validar un payload.
type report struct {
	Source string                  `json:"source"`
	Schema string                  `json:"schema"`
	Valid  bool                    `json:"valid"`
	Errors []validation.FieldError `json:"errors,omitempty"`
	Value  any                     `json:"value,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(exitUsage)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, cfg, log))
}

func run(args []string, stdin io.Reader, stdout io.Writer, cfg *config.Config, log *logger.Logger) int {
	fs := flag.NewFlagSet("schemacheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("schema", "", "nombre del shape (ver -list)")
	list := fs.Bool("list", false, "lista los shapes registrados")
	pdfOut := fs.String("pdf", "", "con -schema daily_report_response: escribe el PDF del reporte en esta ruta")
	image := fs.String("image", "", "valida un archivo de imagen contra la política de subida")
	if err := fs.Parse(args); err != nil {
		log.Error().Err(err).Msg("argumentos inválidos")
		return exitUsage
	}

	v := validation.New()
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	switch {
	case *list:
		for _, n := range schema.Names() {
			fmt.Fprintln(stdout, n)
		}
		return exitOK
	case *image != "":
		return checkImage(*image, cfg, v, enc, log)
	case *name == "":
		log.Error().Msg("falta -schema (usa -list para ver los nombres)")
		return exitUsage
	}

	sources := fs.Args()
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	log.Debug().Str("schema", *name).Int("payloads", len(sources)).Msg("validando")

	code := exitOK
	for _, src := range sources {
		data, err := readSource(src, stdin)
		if err != nil {
			log.Error().Err(err).Str("source", src).Msg("leer payload")
			return exitUsage
		}

		out, err := schema.Validate(v, *name, data)
		if errors.Is(err, domain.ErrUnknownSchema) {
			log.Error().Err(err).Msg("shape desconocido")
			return exitUsage
		}

		rep := report{Source: src, Schema: *name, Valid: err == nil, Value: out}
		if err != nil {
			code = exitInvalid
			var verr *validation.ValidationError
			if errors.As(err, &verr) {
				rep.Errors = verr.Errors
			} else {
				rep.Error = err.Error()
			}
		}
		if err := enc.Encode(rep); err != nil {
			log.Error().Err(err).Msg("escribir reporte")
			return exitUsage
		}

		if rep.Valid && *pdfOut != "" {
			if err := writeReportPDF(out, *pdfOut, cfg.App.Name); err != nil {
				log.Error().Err(err).Str("output", *pdfOut).Msg("generar PDF")
				return exitUsage
			}
			log.Info().Str("output", *pdfOut).Msg("PDF generado")
		}
	}
	return code
}

func readSource(src string, stdin io.Reader) ([]byte, error) {
	if src == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(src)
}

func writeReportPDF(value any, path, appName string) error {
	r, ok := value.(dto.DailyReportResponse)
	if !ok {
		return fmt.Errorf("-pdf solo aplica a daily_report_response")
	}
	data, err := infrapdf.NewDailyReportPDFGenerator(appName).Generate(context.Background(), infrapdf.DailyReportInput{Report: &r})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func checkImage(path string, cfg *config.Config, v *validation.Validator, enc *json.Encoder, log *logger.Logger) int {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("image", path).Msg("leer imagen")
		return exitUsage
	}

	policy := upload.NewPolicy(upload.Config{
		PublicPath:   cfg.Upload.PublicPath,
		MaxBytes:     cfg.Upload.MaxBytes,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}, v)

	rep := report{Source: path, Schema: "image_upload_response"}
	out, err := policy.Accept(filepath.Base(path), http.DetectContentType(data), int64(len(data)))
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			rep.Errors = verr.Errors
		} else {
			rep.Error = err.Error()
		}
	} else {
		rep.Valid = true
		rep.Value = out
	}
	if err := enc.Encode(rep); err != nil {
		log.Error().Err(err).Msg("escribir reporte")
		return exitUsage
	}
	if !rep.Valid {
		return exitInvalid
	}
	return exitOK
}
