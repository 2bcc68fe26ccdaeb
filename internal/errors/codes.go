package errors

// Error code taxonomy, grounded on the teacher's internal/errors/codes.go
// CODE### convention (a phase-prefixed constant plus a registry mapping
// each code to its phase/category/description), adapted to the error
// kinds enumerated in spec.md §7.
const (
	// Name-resolution errors (NAM###).
	NAM001 = "NAM001" // undefined name
	NAM002 = "NAM002" // ambiguous name (multiple `import *` exports collide)
	NAM003 = "NAM003" // unknown module

	// Annotation errors (ANN###).
	ANN001 = "ANN001" // ill-formed type annotation
	ANN002 = "ANN002" // type-argument arity mismatch

	// Override errors (OVR###).
	OVR001 = "OVR001" // incompatible override signature

	// Assignment errors (ASG###).
	ASG001 = "ASG001" // rvalue not a subtype of lvalue
	ASG002 = "ASG002" // tuple-assignment arity mismatch

	// Call errors (CAL###).
	CAL001 = "CAL001" // missing required argument
	CAL002 = "CAL002" // extra positional argument
	CAL003 = "CAL003" // unknown keyword argument
	CAL004 = "CAL004" // duplicate keyword argument
	CAL005 = "CAL005" // argument type mismatch
	CAL006 = "CAL006" // value is not callable
	CAL007 = "CAL007" // unresolved generic type variable
	CAL008 = "CAL008" // no overload variant matches
	CAL009 = "CAL009" // `*` applied to non-iterable
	CAL010 = "CAL010" // `**` applied to non-mapping

	// Operator errors (OPR###).
	OPR001 = "OPR001" // unsupported operand types
	OPR002 = "OPR002" // operator attribute is not callable

	// Flow errors (FLW###).
	FLW001 = "FLW001" // non-bool condition
	FLW002 = "FLW002" // return used in a void-returning function
	FLW003 = "FLW003" // value does not subtype the enclosing return type
	FLW004 = "FLW004" // raised value does not subtype Exception

	// Indexing/slicing errors (IDX###).
	IDX001 = "IDX001" // non-literal or out-of-range tuple index
	IDX002 = "IDX002" // non-integer slice endpoint

	// Cast errors (CST###).
	CST001 = "CST001" // disjoint concrete non-interface cast

	// Member-access errors (MEM###).
	MEM001 = "MEM001" // no such member

	// Build-manager errors (BLD###) — spec.md §4.6 "Failure": a file that
	// can't be read or parsed still lets the rest of the build proceed.
	BLD001 = "BLD001" // source file unreadable
	BLD002 = "BLD002" // parse error
)

// ErrorInfo describes one error code.
type ErrorInfo struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// Registry maps every code above to its descriptive record.
var Registry = map[string]ErrorInfo{
	NAM001: {NAM001, "name-resolution", "scope", "Undefined name"},
	NAM002: {NAM002, "name-resolution", "scope", "Ambiguous name"},
	NAM003: {NAM003, "name-resolution", "module", "Unknown module"},

	ANN001: {ANN001, "annotation", "syntax", "Ill-formed type annotation"},
	ANN002: {ANN002, "annotation", "arity", "Type-argument arity mismatch"},

	OVR001: {OVR001, "override", "signature", "Incompatible override signature"},

	ASG001: {ASG001, "assignment", "type", "Rvalue is not a subtype of lvalue"},
	ASG002: {ASG002, "assignment", "arity", "Tuple-assignment arity mismatch"},

	CAL001: {CAL001, "call", "arity", "Missing required argument"},
	CAL002: {CAL002, "call", "arity", "Extra positional argument"},
	CAL003: {CAL003, "call", "keyword", "Unknown keyword argument"},
	CAL004: {CAL004, "call", "keyword", "Duplicate keyword argument"},
	CAL005: {CAL005, "call", "type", "Argument type mismatch"},
	CAL006: {CAL006, "call", "callable", "Value is not callable"},
	CAL007: {CAL007, "call", "generic", "Unresolved generic type variable"},
	CAL008: {CAL008, "call", "overload", "No overload variant matches"},
	CAL009: {CAL009, "call", "splat", "`*` applied to non-iterable"},
	CAL010: {CAL010, "call", "splat", "`**` applied to non-mapping"},

	OPR001: {OPR001, "operator", "type", "Unsupported operand types"},
	OPR002: {OPR002, "operator", "callable", "Operator method is not callable"},

	FLW001: {FLW001, "flow", "condition", "Condition is not bool"},
	FLW002: {FLW002, "flow", "return", "Return used in a void-returning function"},
	FLW003: {FLW003, "flow", "return", "Return value does not match declared return type"},
	FLW004: {FLW004, "flow", "raise", "Raised value does not subtype Exception"},

	IDX001: {IDX001, "indexing", "tuple", "Invalid tuple index"},
	IDX002: {IDX002, "indexing", "slice", "Non-integer slice endpoint"},

	CST001: {CST001, "cast", "type", "Disjoint cast"},

	MEM001: {MEM001, "member", "scope", "No such member"},

	BLD001: {BLD001, "build", "io", "Source file unreadable"},
	BLD002: {BLD002, "build", "parse", "Parse error"},
}

// IsCallError reports whether code belongs to the call-checking phase.
func IsCallError(code string) bool { return Registry[code].Phase == "call" }

// IsNameResolutionError reports whether code belongs to name resolution.
func IsNameResolutionError(code string) bool {
	return Registry[code].Phase == "name-resolution"
}
