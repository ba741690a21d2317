// Package driver runs one top-level form at a time: installing
// definitions into the symbol table or evaluating expressions and
// printing their value (spec §4.6), grounded on interpretate()'s
// definition/expression dispatch in original_source/src/interpreter.c
// and restated with the teacher's separation of operational diagnostics
// from protocol/value output.
package driver

import (
	"fmt"
	"io"

	"lispi/ast"
	"lispi/eval"
	"lispi/interp"
	"lispi/symtab"
)

// Printer is a small io.Writer wrapper so tests can capture output
// without touching stdout, grounded on how cmd/barn/main.go separates
// log.Printf (operational) from direct value/protocol output.
type Printer struct {
	out io.Writer
}

// NewPrinter wraps out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Driver runs forms against one interpreter context, printing results and
// diagnostics through its Printer.
type Driver struct {
	Ctx     *interp.Context
	Printer *Printer
}

// New builds a Driver.
func New(ctx *interp.Context, out io.Writer) *Driver {
	return &Driver{Ctx: ctx, Printer: NewPrinter(out)}
}

// RunForm installs form if it is a definition, or evaluates and prints it
// if it is an anonymous expression. Redefinition attempts and evaluation
// errors print a one-line diagnostic and leave the symbol table unchanged
// (spec §4.6, §7); the driver never aborts the process.
func (d *Driver) RunForm(form *ast.Form) {
	if form.IsDefinition() {
		d.runDefinition(form)
		return
	}
	d.runExpression(form)
}

func (d *Driver) runDefinition(form *ast.Form) {
	def := &symtab.Definition{Name: form.Name, Params: form.Params, Body: form.Body}

	if form.IsConstant() {
		value, err := eval.Eval(form.Body, nil, d.Ctx)
		if err != nil {
			d.Printer.printf("%s\n", err.Error())
			return
		}
		def.Body = ast.Leaf(value)
		if defErr := d.Ctx.Symbols.Define(def); defErr != nil {
			d.Printer.printf("redefinition is not allowed\n")
			return
		}
		d.Printer.printf("Defined %s = %s\n", form.Name, value.String())
		return
	}

	if defErr := d.Ctx.Symbols.Define(def); defErr != nil {
		d.Printer.printf("redefinition is not allowed\n")
		return
	}
	d.Printer.printf("Defined function %s\n", form.Name)
}

func (d *Driver) runExpression(form *ast.Form) {
	value, err := eval.Eval(form.Body, nil, d.Ctx)
	if err != nil {
		d.Printer.printf("%s\n", err.Error())
		return
	}
	d.Printer.printf("%s\n", value.String())
}
