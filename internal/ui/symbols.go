package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Operation succeeded
	SymbolFail     = "✗" // Operation failed
	SymbolPending  = "○" // Not yet loaded
	SymbolProgress = "◐" // Loading
	SymbolComplete = "●" // Done (alternative to success)
	SymbolInfo     = "ℹ" // Informational notice
)
