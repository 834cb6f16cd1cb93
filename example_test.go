package catlog_test

import (
	"fmt"

	"github.com/phuonguno98/catlog"
)

// Example demonstrates standalone pattern formatting.
func Example() {
	line := catlog.Format("%LEVEL: %MESSAGE\n", catlog.Record{Level: catlog.INFO, Message: "hello"}, nil)
	fmt.Print(line)
	// Output: INFO: hello
}

// ExampleRegistry_Resolve demonstrates category resolution: exact match,
// then longest registered prefix, then the ROOT fallback.
func ExampleRegistry_Resolve() {
	reg := catlog.NewRegistry()
	_ = reg.LoadConfig([]byte("loggers:\n  ROOT: {}\n  payment: {}\n"))

	fmt.Println(reg.Resolve("payment").Category())
	fmt.Println(reg.Resolve("payment.gateway.visa").Category())
	fmt.Println(reg.Resolve("inventory").Category())
	// Output:
	// payment
	// payment
	// ROOT
}

// ExampleLogger_Log demonstrates threshold gating.
func ExampleLogger_Log() {
	reg := catlog.NewRegistry()
	_ = reg.LoadConfig([]byte("pattern: \"%LEVEL %MESSAGE\\n\"\nloggers:\n  ROOT:\n    level: WARN\n"))

	log := reg.Resolve("")
	log.Info("suppressed below the threshold")
	log.Warnf("disk usage at %d%%", 93)
	// Output: WARN disk usage at 93%
}
