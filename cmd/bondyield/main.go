package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/numlib/bond"
)

// yieldInput describes one bond. Rates are decimals (0.05 = 5%); Price is
// the quoted dirty price for the same Face.
type yieldInput struct {
	TaskID     string  `json:"task_id,omitempty"`
	Face       float64 `json:"face"`
	CouponRate float64 `json:"coupon_rate"`
	Frequency  int     `json:"frequency"`
	Years      float64 `json:"years"`
	Price      float64 `json:"price"`
}

type yieldOutput struct {
	TaskID           string  `json:"task_id,omitempty"`
	Yield            float64 `json:"yield"`
	Iterations       int     `json:"iterations"`
	Duration         float64 `json:"duration"`
	ModifiedDuration float64 `json:"modified_duration"`
	Convexity        float64 `json:"convexity"`
	Error            string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: bondyield -input <path>")
		fmt.Fprintln(os.Stderr, "Solve yield to maturity from a quoted price, with duration and convexity.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: bondyield -input <path>")
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
	outputs := make([]yieldOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, yieldOutput{TaskID: in.TaskID, Error: err.Error()})
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

func process(in yieldInput) (*yieldOutput, error) {
	b := bond.Bond{
		Face:       in.Face,
		CouponRate: in.CouponRate,
		Frequency:  in.Frequency,
		Years:      in.Years,
	}

	res, err := b.Yield(in.Price)
	if err != nil {
		return nil, err
	}

	return &yieldOutput{
		TaskID:           in.TaskID,
		Yield:            res.Root,
		Iterations:       res.Iterations,
		Duration:         b.Duration(res.Root),
		ModifiedDuration: b.ModifiedDuration(res.Root),
		Convexity:        b.Convexity(res.Root),
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]yieldInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []yieldInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input yieldInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []yieldInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(yieldOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
