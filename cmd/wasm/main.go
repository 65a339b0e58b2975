//go:build js && wasm

// Command wasm exposes the trajectory engine to the browser via WebAssembly.
// After loading, it registers two global JavaScript functions:
//
//	computeTrajectory(jsonString) -> jsonString
//	trajectorySchema() -> jsonString
//
// computeTrajectory takes a JSON-encoded LaunchInput and returns the Report,
// the same contract as the CLI's -json mode. trajectorySchema returns the
// JSON Schema of the input document. Failures come back as {"error": msg}.
package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"github.com/cxd309/trajectory/internal/engine"
)

func main() {
	js.Global().Set("computeTrajectory", js.FuncOf(computeTrajectory))
	js.Global().Set("trajectorySchema", js.FuncOf(trajectorySchema))
	select {} // keep the WASM module alive until the page is closed
}

func computeTrajectory(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return reply("", errNoInput)
	}
	return reply(engine.RunJSON(args[0].String()))
}

func trajectorySchema(_ js.Value, _ []js.Value) any {
	data, err := json.Marshal(engine.Schema())
	return reply(string(data), err)
}

var errNoInput = errors.New("no input provided")

// reply converts a Go result into the value handed back to JavaScript.
func reply(result string, err error) any {
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
