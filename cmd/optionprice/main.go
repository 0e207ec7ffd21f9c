package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/numlib/option"
)

// priceInput describes one European option. Type is "call" or "put". When
// MarketPrice is positive the implied volatility is solved as well (calls
// only).
type priceInput struct {
	TaskID      string  `json:"task_id,omitempty"`
	Type        string  `json:"type"`
	Spot        float64 `json:"spot"`
	Strike      float64 `json:"strike"`
	Rate        float64 `json:"rate"`
	Vol         float64 `json:"vol"`
	Years       float64 `json:"years"`
	MarketPrice float64 `json:"market_price,omitempty"`
}

type priceOutput struct {
	TaskID     string   `json:"task_id,omitempty"`
	Type       string   `json:"type,omitempty"`
	Price      float64  `json:"price"`
	Delta      float64  `json:"delta"`
	Vega       float64  `json:"vega"`
	ImpliedVol *float64 `json:"implied_vol,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: optionprice -input <path>")
		fmt.Fprintln(os.Stderr, "Price a European option under Black-Scholes; optionally solve implied vol.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: optionprice -input <path>")
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
	outputs := make([]priceOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, priceOutput{TaskID: in.TaskID, Type: in.Type, Error: err.Error()})
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

func process(in priceInput) (*priceOutput, error) {
	p := option.Params{
		Spot:   in.Spot,
		Strike: in.Strike,
		Rate:   in.Rate,
		Vol:    in.Vol,
		Years:  in.Years,
	}
	if p.Spot <= 0 || p.Strike <= 0 {
		return nil, fmt.Errorf("spot and strike must be positive")
	}

	out := &priceOutput{TaskID: in.TaskID, Type: in.Type}
	switch in.Type {
	case "call":
		out.Price = option.Call(p)
		out.Delta = option.Delta(p)
	case "put":
		out.Price = option.Put(p)
		out.Delta = option.Delta(p) - 1
	default:
		return nil, fmt.Errorf("unknown type %q (call, put)", in.Type)
	}
	out.Vega = option.Vega(p)

	if in.MarketPrice > 0 {
		if in.Type != "call" {
			return nil, fmt.Errorf("implied vol is only solved for calls")
		}
		iv, err := option.ImpliedVol(p, in.MarketPrice)
		if err != nil {
			return nil, err
		}
		out.ImpliedVol = &iv
	}

	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]priceInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []priceInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input priceInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []priceInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(priceOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
