package diag

// Semantic analysis diagnostics are in the [100-200) range.
var (
	WarningRedefinition     = newWarning(100, "Variable '%v' redefinition")
	WarningUnresolvedSymbol = newWarning(101, "Symbol '%v' could not be found")
	WarningUnknownType      = newWarning(102, "Unknown type '%v'%v")
	WarningFuncRedefinition = newWarning(103, "Function '%v' redefinition")
)

// Backend diagnostics are in the [200-300) range.
var (
	WarningResourceNotFound = newWarning(200, "Resource '%v' not found in linker")
	WarningInvalidOperands  = newWarning(201, "Skip invalid %v (missing src)")
	WarningImmediateRange   = newWarning(202, "Constant %v does not fit a 16-bit immediate; mov not lowered")
	WarningBindingRange     = newWarning(203, "Resource '%v' slot %v does not fit an 8-bit operand; load not lowered")
)

// Driver diagnostics are in the [300-400) range.
var (
	ErrorVerifyFailed = newError(300, "IR verification failed after %v: %v")
	InfoWritten       = &Diag{ID: 301, Severity: Info, Message: "Binary written to %v (%v, digest %v)"}
)
