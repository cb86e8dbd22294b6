//go:build js && wasm

// Command wasm exposes the bridge to a JavaScript host as a global function:
//
//	const text = ocr(new Uint8Array(pdfBytes)); // throws Error on failure
//
// Build with GOOS=js GOARCH=wasm and load with wasm_exec.js.
package main

import (
	"syscall/js"

	"pdf-ocr-bridge/internal/bridge"
	"pdf-ocr-bridge/internal/extractor"
)

// throwingWrapper turns an Error returned by the Go callback into a throw.
// A panic inside js.FuncOf would take down the whole Go runtime instead.
const throwingWrapper = `return function ocr(input) {
	const out = impl(input);
	if (out instanceof Error) {
		throw out;
	}
	return out;
};`

func main() {
	b := bridge.New(extractor.NewLedongthuc())

	impl := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return ocr(b, args)
	})
	wrapper := js.Global().Get("Function").New("impl", throwingWrapper).Invoke(impl)
	js.Global().Set("ocr", wrapper)

	// Keep the Go runtime alive so the exported function stays callable.
	select {}
}

// ocr returns the extracted text, or a JS Error describing the failure.
func ocr(b *bridge.Bridge, args []js.Value) interface{} {
	if len(args) != 1 {
		return jsError("ocr expects exactly one argument")
	}
	input := args[0]
	if input.Type() != js.TypeObject || !input.InstanceOf(js.Global().Get("Uint8Array")) {
		return jsError("ocr expects a Uint8Array or Buffer")
	}

	document := make([]byte, input.Get("length").Int())
	js.CopyBytesToGo(document, input)

	text, err := b.ExtractText(document)
	if err != nil {
		return jsError(err.Error())
	}
	return text
}

func jsError(message string) js.Value {
	return js.Global().Get("Error").New(message)
}
