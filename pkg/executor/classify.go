package executor

import "strings"

// stderrClass is the disposition of one diagnostic line.
type stderrClass int

const (
	stderrBenign stderrClass = iota
	stderrMemory
	stderrError
)

// benignPatterns are diagnostic substrings the tools print in normal operation.
// Suppressed, not treated as errors.
var benignPatterns = []string{
	"UserWarning",
	"FutureWarning",
	"DeprecationWarning",
	"warnings.warn",
	"FP16 is not supported",
}

// memoryPatterns indicate the tool exhausted memory. These get a dedicated
// remediation message instead of the raw diagnostic text.
var memoryPatterns = []string{
	"out of memory",
	"CUDA out of memory",
	"MemoryError",
	"DefaultCPUAllocator: can't allocate memory",
	"Cannot allocate memory",
}

func classifyStderr(line string) stderrClass {
	for _, p := range memoryPatterns {
		if strings.Contains(line, p) {
			return stderrMemory
		}
	}
	for _, p := range benignPatterns {
		if strings.Contains(line, p) {
			return stderrBenign
		}
	}
	return stderrError
}

// Remediation messages surfaced to the user for the specially classified
// failure modes.
const (
	memoryErrMsg = "the tool ran out of memory; try a smaller model size or a shorter input"
	timeoutMsg   = "the tool timed out; try a smaller model size or a shorter input"
	killedMsg    = "the process was interrupted before it completed"
)
