package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/pkg/config"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Name: "restaurante-pos"},
		Log: config.LogConfig{Level: "error"},
		Upload: config.UploadConfig{
			PublicPath:   "/static/images",
			MaxBytes:     2 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/jpg"},
		},
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func decodeReports(t *testing.T, out *bytes.Buffer) []report {
	t.Helper()
	var reports []report
	dec := json.NewDecoder(out)
	for dec.More() {
		var r report
		require.NoError(t, dec.Decode(&r))
		reports = append(reports, r)
	}
	return reports
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"-list"}, nil, &out, testConfig(), logger.Nop())

	assert.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines, "daily_expense_create")
	assert.Contains(t, lines, "order_create")
}

func TestRun_StdinValido(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"category":"Produce","item_name":"Tomatoes","unit_cost":2.5,"total_amount":25.0,"branch_id":1}`)

	code := run([]string{"-schema", "daily_expense_create"}, in, &out, testConfig(), logger.Nop())

	assert.Equal(t, exitOK, code)
	reports := decodeReports(t, &out)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Valid)
	assert.Equal(t, "-", reports[0].Source)
}

func TestRun_ArchivosConUnoInvalido(t *testing.T) {
	ok := writeFile(t, "ok.json", []byte(`{"branch_id":1,"items":[]}`))
	bad := writeFile(t, "bad.json", []byte(`{"items":[{"quantity":1}]}`))
	var out bytes.Buffer

	code := run([]string{"-schema", "order_create", ok, bad}, nil, &out, testConfig(), logger.Nop())

	assert.Equal(t, exitInvalid, code)
	reports := decodeReports(t, &out)
	require.Len(t, reports, 2)
	assert.True(t, reports[0].Valid)
	assert.False(t, reports[1].Valid)

	fields := make([]string, 0, len(reports[1].Errors))
	for _, fe := range reports[1].Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"branch_id", "items[0].menu_item_id"}, fields)
}

func TestRun_SchemaDesconocido(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"-schema", "pedido"}, strings.NewReader(`{}`), &out, testConfig(), logger.Nop())

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, out.String())
}

func TestRun_SinSchema(t *testing.T) {
	code := run(nil, nil, &bytes.Buffer{}, testConfig(), logger.Nop())
	assert.Equal(t, exitUsage, code)
}

func TestRun_PDFDelReporte(t *testing.T) {
	src := writeFile(t, "reporte.json", []byte(`{
		"id": 1, "branch_id": 2, "report_date": "2024-05-01T00:00:00Z",
		"total_sales": 30, "total_revenue": "500000", "total_expenses": "120000",
		"net_profit": "380000", "top_selling_item": "Latte",
		"export_status": "pending", "exported_at": null, "created_at": "2024-05-01T23:00:00Z"
	}`))
	pdfPath := filepath.Join(t.TempDir(), "reporte.pdf")
	var out bytes.Buffer

	code := run([]string{"-schema", "daily_report_response", "-pdf", pdfPath, src}, nil, &out, testConfig(), logger.Nop())

	require.Equal(t, exitOK, code)
	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRun_PDFConOtroSchema(t *testing.T) {
	pdfPath := filepath.Join(t.TempDir(), "x.pdf")

	code := run([]string{"-schema", "order_create", "-pdf", pdfPath}, strings.NewReader(`{"branch_id":1,"items":[]}`), &bytes.Buffer{}, testConfig(), logger.Nop())

	assert.Equal(t, exitUsage, code)
}

// pngHeader cabecera mínima reconocida por http.DetectContentType.
var pngHeader = []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR")

func TestRun_ImagenValida(t *testing.T) {
	img := writeFile(t, "latte.png", pngHeader)
	var out bytes.Buffer

	code := run([]string{"-image", img}, nil, &out, testConfig(), logger.Nop())

	assert.Equal(t, exitOK, code)
	reports := decodeReports(t, &out)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Valid)
}

func TestRun_ImagenConExtensionInvalida(t *testing.T) {
	img := writeFile(t, "latte.exe", pngHeader)
	var out bytes.Buffer

	code := run([]string{"-image", img}, nil, &out, testConfig(), logger.Nop())

	assert.Equal(t, exitInvalid, code)
	reports := decodeReports(t, &out)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Errors, 1)
	assert.Equal(t, "Invalid image format", reports[0].Errors[0].Message)
}

func TestRun_ArchivoNoImagen(t *testing.T) {
	img := writeFile(t, "notas.png", []byte("solo texto"))
	var out bytes.Buffer

	code := run([]string{"-image", img}, nil, &out, testConfig(), logger.Nop())

	assert.Equal(t, exitInvalid, code)
	reports := decodeReports(t, &out)
	require.Len(t, reports, 1)
	assert.Contains(t, reports[0].Error, "imagen inválida")
}
