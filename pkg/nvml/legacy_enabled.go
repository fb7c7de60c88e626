//go:build nvmllegacy

package nvml

// Legacy ABI variants are reachable in this build: the resolver may fall
// back to deprecated, unsuffixed entry points when no newer variant is
// exported by the installed driver.
const legacyFunctionsEnabled = true
