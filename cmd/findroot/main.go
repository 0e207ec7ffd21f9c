package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/meenmo/numlib/roots"
)

// rootInput describes one root-finding task. The target function is a
// polynomial given by its coefficients in ascending-degree order, so
// {"coefficients": [-2, 0, 1]} is x² − 2.
type rootInput struct {
	TaskID string `json:"task_id,omitempty"`
	// Method is one of "bisection", "newton", "secant".
	Method       string    `json:"method"`
	Coefficients []float64 `json:"coefficients"`
	// BracketLow/BracketHigh bound the bisection search.
	BracketLow  float64 `json:"bracket_low,omitempty"`
	BracketHigh float64 `json:"bracket_high,omitempty"`
	// X0 seeds Newton; X0 and X1 seed the secant method.
	X0        float64 `json:"x0,omitempty"`
	X1        float64 `json:"x1,omitempty"`
	Tolerance float64 `json:"tolerance"`
}

type rootOutput struct {
	TaskID     string  `json:"task_id,omitempty"`
	Method     string  `json:"method,omitempty"`
	Root       float64 `json:"root"`
	Residual   float64 `json:"residual"`
	Iterations int     `json:"iterations"`
	Error      string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: findroot -input <path>")
		fmt.Fprintln(os.Stderr, "Find a root of a polynomial by bisection, Newton-Raphson, or the secant method.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: findroot -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]rootOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, rootOutput{TaskID: in.TaskID, Method: in.Method, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in rootInput) (*rootOutput, error) {
	if len(in.Coefficients) == 0 {
		return nil, fmt.Errorf("coefficients are required")
	}
	if in.Tolerance <= 0 {
		return nil, fmt.Errorf("tolerance must be positive")
	}

	f := polynomial(in.Coefficients)

	var (
		res roots.Result
		err error
	)
	switch in.Method {
	case "bisection":
		res, err = roots.Bisection(f, in.BracketLow, in.BracketHigh, in.Tolerance)
	case "newton":
		res, err = roots.Newton(f, derivative(in.Coefficients), in.X0, in.Tolerance)
	case "secant":
		res, err = roots.Secant(f, in.X0, in.X1, in.Tolerance)
	default:
		return nil, fmt.Errorf("unknown method %q (bisection, newton, secant)", in.Method)
	}
	if err != nil {
		return nil, err
	}

	return &rootOutput{
		TaskID:     in.TaskID,
		Method:     in.Method,
		Root:       res.Root,
		Residual:   f(res.Root),
		Iterations: res.Iterations,
	}, nil
}

// polynomial evaluates coefficients (ascending degree) by Horner's scheme.
func polynomial(coeffs []float64) roots.Func {
	return func(x float64) float64 {
		acc := 0.0
		for i := len(coeffs) - 1; i >= 0; i-- {
			acc = math.FMA(acc, x, coeffs[i])
		}
		return acc
	}
}

// derivative returns the analytic derivative of the same polynomial.
func derivative(coeffs []float64) roots.Func {
	d := make([]float64, 0, len(coeffs))
	for i := 1; i < len(coeffs); i++ {
		d = append(d, float64(i)*coeffs[i])
	}
	if len(d) == 0 {
		d = []float64{0}
	}
	return polynomial(d)
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]rootInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []rootInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input rootInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []rootInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(rootOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
