// Package codegen renders a branch directory as Go source so it can be
// compiled into the binaries.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/template"

	"shipping-tools/internal/domain"
)

const DefaultDomainImport = "shipping-tools/internal/domain"

type Options struct {
	Package      string
	VarName      string
	Source       string // listing file name recorded in the header
	DomainImport string
}

var branchesTmpl = template.Must(template.New("branches").Funcs(template.FuncMap{
	"q": strconv.Quote,
}).Parse(`// Code generated by shiptools branches generate; DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import "{{.DomainImport}}"

// {{.VarName}} lists {{len .Branches}} post-office branches in listing order.
var {{.VarName}} = []domain.Branch{
{{- range .Branches}}
	{Code: {{q .Code}}, Street: {{q .Street}}, Number: {{q .Number}}, Locality: {{q .Locality}}, Province: {{q .Province}}},
{{- end}}
}
`))

// Generate returns gofmt'ed Go source declaring branches as a
// []domain.Branch variable.
func Generate(branches []domain.Branch, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "branchdata"
	}
	if opts.VarName == "" {
		opts.VarName = "Branches"
	}
	if opts.DomainImport == "" {
		opts.DomainImport = DefaultDomainImport
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("codegen: invalid package name %q", opts.Package)
	}
	if !token.IsIdentifier(opts.VarName) || !token.IsExported(opts.VarName) {
		return nil, fmt.Errorf("codegen: variable name %q must be an exported identifier", opts.VarName)
	}
	if len(branches) == 0 {
		return nil, errors.New("codegen: no branches to generate")
	}

	var buf bytes.Buffer
	err := branchesTmpl.Execute(&buf, struct {
		Options
		Branches []domain.Branch
	}{opts, branches})
	if err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format: %w", err)
	}
	return src, nil
}
