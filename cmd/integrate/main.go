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

	"github.com/meenmo/numlib/quad"
)

// integrateInput describes one quadrature task. The integrand is either a
// named builtin or a polynomial given by ascending-degree coefficients.
// With "n" set the rule is applied once at that partition count; with
// "tolerance" set the estimate is refined by doubling until it stabilizes.
type integrateInput struct {
	TaskID string `json:"task_id,omitempty"`
	// Rule is one of "midpoint", "trapezoid", "simpson".
	Rule string `json:"rule"`
	// Function names a builtin: "gaussian" (exp(-x²)), "sin", "exp".
	// Leave empty when Coefficients is set.
	Function     string    `json:"function,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Low          float64   `json:"low"`
	High         float64   `json:"high"`
	N            int       `json:"n,omitempty"`
	Tolerance    float64   `json:"tolerance,omitempty"`
}

type integrateOutput struct {
	TaskID      string  `json:"task_id,omitempty"`
	Rule        string  `json:"rule,omitempty"`
	Estimate    float64 `json:"estimate"`
	Partitions  int     `json:"partitions"`
	Refinements int     `json:"refinements,omitempty"`
	Error       string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: integrate -input <path>")
		fmt.Fprintln(os.Stderr, "Approximate a definite integral by the midpoint, trapezoidal, or Simpson rule,")
		fmt.Fprintln(os.Stderr, "at a fixed partition count or refined adaptively to a tolerance.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: integrate -input <path>")
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
	outputs := make([]integrateOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, integrateOutput{TaskID: in.TaskID, Rule: in.Rule, Error: err.Error()})
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

func process(in integrateInput) (*integrateOutput, error) {
	rule, err := ruleByName(in.Rule)
	if err != nil {
		return nil, err
	}
	f, err := integrand(in)
	if err != nil {
		return nil, err
	}

	switch {
	case in.Tolerance > 0:
		res, err := quad.Refine(rule, f, in.Low, in.High, in.Tolerance)
		if err != nil {
			return nil, err
		}
		return &integrateOutput{
			TaskID:      in.TaskID,
			Rule:        in.Rule,
			Estimate:    res.Estimate,
			Partitions:  res.Partitions,
			Refinements: res.Refinements,
		}, nil
	case in.N > 0:
		est, err := rule(f, in.Low, in.High, in.N)
		if err != nil {
			return nil, err
		}
		return &integrateOutput{
			TaskID:     in.TaskID,
			Rule:       in.Rule,
			Estimate:   est,
			Partitions: in.N,
		}, nil
	default:
		return nil, fmt.Errorf("either n or tolerance must be positive")
	}
}

func ruleByName(name string) (quad.Rule, error) {
	switch name {
	case "midpoint":
		return quad.Midpoint, nil
	case "trapezoid":
		return quad.Trapezoid, nil
	case "simpson":
		return quad.Simpson, nil
	default:
		return nil, fmt.Errorf("unknown rule %q (midpoint, trapezoid, simpson)", name)
	}
}

func integrand(in integrateInput) (quad.Func, error) {
	if len(in.Coefficients) > 0 {
		if in.Function != "" {
			return nil, fmt.Errorf("function and coefficients are mutually exclusive")
		}
		coeffs := in.Coefficients
		return func(x float64) float64 {
			acc := 0.0
			for i := len(coeffs) - 1; i >= 0; i-- {
				acc = math.FMA(acc, x, coeffs[i])
			}
			return acc
		}, nil
	}

	switch in.Function {
	case "gaussian":
		return func(x float64) float64 { return math.Exp(-x * x) }, nil
	case "sin":
		return math.Sin, nil
	case "exp":
		return math.Exp, nil
	default:
		return nil, fmt.Errorf("unknown function %q (gaussian, sin, exp) and no coefficients given", in.Function)
	}
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]integrateInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []integrateInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input integrateInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []integrateInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(integrateOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
