// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package compiler translates program text into a machine.Operation.
//
// Program text is a sequence of the instructions
//
//	+  increment the current cell
//	-  decrement the current cell
//	>  move the pointer right
//	<  move the pointer left
//	.  write the current cell to the output
//	[  repeat up to the matching ] while the current cell is not zero
//
// Whitespace is ignored, and ';' begins a comment that runs to the end of
// the line. A $(expr) is replaced by the string value of the Starlark
// expression expr before the line is compiled; predefines are visible to
// the expression as string globals.
package compiler

import (
	"bufio"
	"io"
	"log"
	"maps"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tapevm/machine"
)

const (
	MAX_LINE = 1 << 24 // Longest accepted source line, in bytes.
)

// Compiler is a single pass compiler for tape programs.
type Compiler struct {
	Verbose bool // If set, verbosely logs the compiler actions.

	predefine map[string]string // Predefined expression globals.
}

// frame collects the operations of one bracket nesting level.
type frame struct {
	ops    []*machine.Operation
	lineno int
	column int
	line   string
}

// exprRe matches a $(...) expression.
var exprRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Predefine defines a new string global, or redefines an existing one, for
// $(...) expressions.
func (cc *Compiler) Predefine(name string, value string) {
	if cc.predefine == nil {
		cc.predefine = map[string]string{name: value}
	} else {
		cc.predefine[name] = value
	}
}

// Predefines returns a copy of the predefined globals.
func (cc *Compiler) Predefines() map[string]string {
	return maps.Clone(cc.predefine)
}

// parenEval does compile-time $(...) evaluations.
func (cc *Compiler) parenEval(expr string) (value string, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range cc.predefine {
		pred[key] = starlark.String(str)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_str, ok := dict["rc"].(starlark.String)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_str.GoString()
	return
}

// expand replaces every $(...) in a line with its value.
func (cc *Compiler) expand(line string) (expanded string, err error) {
	expanded = exprRe.ReplaceAllStringFunc(line, func(str string) string {
		if err != nil {
			return ""
		}
		value, _err := cc.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return value
	})
	return
}

// Parse compiles program text into an operation. Empty text compiles to
// machine.Noop. No operation is returned if there is any error.
func (cc *Compiler) Parse(input io.Reader) (prog *machine.Operation, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE)

	var line string
	var lineno int
	var column int

	defer func() {
		if err != nil {
			prog = nil
			if _, ok := err.(*ErrSyntax); !ok {
				err = &ErrSyntax{LineNo: lineno, Column: column, Line: line, Err: err}
			}
		}
	}()

	stack := []*frame{{}}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1
		column = 0

		if cc.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		// The input operator is refused wherever it appears, comments included.
		if idx := strings.IndexByte(text, ','); idx >= 0 {
			line = text
			column = idx + 1
			err = ErrUnsupportedOperator
			return
		}

		text_comment := strings.SplitN(text, ";", 2)
		line = text_comment[0]

		line, err = cc.expand(line)
		if err != nil {
			return
		}

		for n, ch := range line {
			column = n + 1

			top := stack[len(stack)-1]

			switch ch {
			case '+':
				top.ops = append(top.ops, machine.IncCell)
			case '-':
				top.ops = append(top.ops, machine.DecCell)
			case '>':
				top.ops = append(top.ops, machine.IncPointer)
			case '<':
				top.ops = append(top.ops, machine.DecPointer)
			case '.':
				top.ops = append(top.ops, machine.WriteOutput)
			case '[':
				stack = append(stack, &frame{lineno: lineno, column: column, line: line})
			case ']':
				if len(stack) == 1 {
					err = ErrBracketUnmatched
					return
				}
				stack = stack[:len(stack)-1]
				parent := stack[len(stack)-1]
				parent.ops = append(parent.ops, machine.WhileNonZero(machine.SequenceOf(top.ops...)))
			case ',':
				err = ErrUnsupportedOperator
				return
			case ' ', '\t', '\r', '\v', '\f':
			default:
				err = ErrInstructionInvalid
				return
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1]
		err = &ErrSyntax{LineNo: open.lineno, Column: open.column, Line: open.line, Err: ErrBracketUnclosed}
		return
	}

	prog = machine.SequenceOf(stack[0].ops...)

	return
}

// Compile compiles program text with no predefines.
func Compile(source string) (prog *machine.Operation, err error) {
	cc := &Compiler{}
	return cc.Parse(strings.NewReader(source))
}
