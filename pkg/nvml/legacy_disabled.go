//go:build !nvmllegacy

package nvml

// Default build: only the newest available variant of each operation is
// reachable. Build with -tags nvmllegacy to let the resolver fall back
// to deprecated entry points on old drivers.
const legacyFunctionsEnabled = false
