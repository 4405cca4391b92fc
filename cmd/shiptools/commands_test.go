package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestShipmentsFilter(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ventas.csv")
	out := filepath.Join(dir, "ventas_filtrado.csv")

	export := strings.Join([]string{
		"Orden;Email;Fecha;Estado;Moneda;Subtotal;Descuento;Envio;Total;Nombre;Medio de env\xedo",
		"1;a@b.c;01/02/2024;x;ARS;1;0;0;1;Ana;Andreani Est\xe1ndar - Env\xedo a domicilio",
		"1;;;;;;;;",
		"2;a@b.c;01/02/2024;x;ARS;1;0;0;1;Luis;Retiro en sucursal",
	}, "\n")
	require.NoError(t, os.WriteFile(in, []byte(export), 0o644))

	stdout, err := run(t, "shipments", "filter", "--encoding", "windows-1252", "--bom", in, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rows considered: 2")
	assert.Contains(t, stdout, "Rows accepted:   1")
	assert.Contains(t, stdout, "Rows written:    1")
	assert.Contains(t, stdout, "Lines skipped:   1")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"\xEF\xBB\xBFOrden;Email;Fecha;Estado;Moneda;Subtotal;Descuento;Envio;Total;Nombre;Medio de envío\n"+
			"1;a@b.c;01/02/2024;x;ARS;1;0;0;1;Ana;Andreani Estándar - Envío a domicilio",
		string(got))
}

func TestShipmentsFilterMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	_, err := run(t, "shipments", "filter", filepath.Join(dir, "missing.csv"), out)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestBranchesGenerate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sucursales.csv")
	out := filepath.Join(dir, "branches_gen.go")
	listing := "CÓDIGO ,CALLE ,NÚMERO ,LOCALIDAD ,PROVINCIA \n" +
		"SRO,CORDOBA,721,ROSARIO,SANTA FE\n" +
		"BAD,,,,SANTA FE\n"
	require.NoError(t, os.WriteFile(src, []byte(listing), 0o644))

	stdout, err := run(t, "branches", "generate", "--source", src, "--out", out, "--package", "data")
	require.NoError(t, err)
	assert.Contains(t, stdout, "with 1 branches (1 rows skipped)")

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "package data")
	assert.Contains(t, string(got), `{Code: "SRO", Street: "CORDOBA", Number: "721", Locality: "ROSARIO", Province: "SANTA FE"},`)
	assert.NotContains(t, string(got), "BAD")
}

func TestBranchesLookupEmbedded(t *testing.T) {
	stdout, err := run(t, "branches", "lookup", "--locality", "Rosario", "--province", "Santa Fe")
	require.NoError(t, err)
	assert.Equal(t, "SRO\texact\tS\n", stdout)

	stdout, err = run(t, "branches", "lookup", "--locality", "Córdoba", "--province", "Córdoba")
	require.NoError(t, err)
	assert.Equal(t, "XFZ\tcapital\tX\n", stdout)

	_, err = run(t, "branches", "lookup", "--locality", "Nada", "--province", "Atlantis")
	assert.Error(t, err)
}

func TestOrdersResolve(t *testing.T) {
	in := filepath.Join(t.TempDir(), "ventas.csv")

	fields := make([]string, 25)
	fields[0] = "1001"
	fields[2] = "01/02/2024"
	fields[19] = "Rosario"
	fields[21] = "2000"
	fields[22] = "Santa Fe"
	export := "header\n" + strings.Join(fields, ";") + "\n"
	require.NoError(t, os.WriteFile(in, []byte(export), 0o644))

	stdout, err := run(t, "orders", "resolve", "--encoding", "utf-8", "--no-cache", in)
	require.NoError(t, err)
	assert.Equal(t,
		"line,order_id,locality,province,province_code,postal_code,branch_code,stage,cached\n"+
			"2,1001,Rosario,Santa Fe,S,2000,SRO,exact,false\n",
		stdout)
}

func TestVersion(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "shiptools dev\n", stdout)
}
