package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://uniqid.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Hydration Errors (E040-E059)
	// ============================================

	"E044": {
		Category: CategoryHydration,
		Message:  "Hydration ID not found",
		Detail:   "An element carrying an id directive has no hydration ID, so the forced attribute write cannot be addressed to the client.",
		DocURL:   docBase + "E044",
	},

	// ============================================
	// Protocol Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryProtocol,
		Message:  "WebSocket handshake failed",
		Detail:   "The live connection did not start with a valid client hello frame.",
		DocURL:   docBase + "E060",
	},
	"E061": {
		Category: CategoryProtocol,
		Message:  "Invalid frame",
		Detail:   "A frame or its payload could not be decoded.",
		DocURL:   docBase + "E061",
	},
	"E062": {
		Category: CategoryProtocol,
		Message:  "Page not found",
		Detail:   "The live connection asked to activate a path with no registered page.",
		DocURL:   docBase + "E062",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid generator scope",
		Detail:   "The generator scope must be either \"process\" or \"request\".",
		DocURL:   docBase + "E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The server port must be between 0 and 65535.",
		DocURL:   docBase + "E122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid tracing exporter",
		Detail:   "The tracing exporter must be \"stdout\" or \"none\".",
		DocURL:   docBase + "E123",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No uniqid.json or uniqid.yaml was found in the project directory.",
		DocURL:   docBase + "E141",
	},

	// ============================================
	// Runtime Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryRuntime,
		Message:  "Identifier generator exhausted",
		Detail:   "The generator counter reached its maximum value. Issuing another identifier would wrap around and repeat earlier identifiers.",
		DocURL:   docBase + "E201",
	},

	// ============================================
	// CLI Errors (E300-E319)
	// ============================================

	"E300": {
		Category: CategoryCLI,
		Message:  "Invalid argument",
		Detail:   "A command line argument could not be parsed.",
		DocURL:   docBase + "E300",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
