// Package config loads and validates the uniqid project configuration.
//
// Configuration lives in uniqid.json at the project root. A uniqid.yaml or
// uniqid.yml file is accepted in its place:
//
//	{
//	  "prefix": "id-",
//	  "scope": "request",
//	  "server": {"host": "localhost", "port": 3000, "livePath": "/_live"},
//	  "metrics": {"enabled": true, "path": "/metrics", "namespace": "uniqid"},
//	  "tracing": {"enabled": false, "exporter": "stdout"}
//	}
//
// Missing fields take the defaults of New. Errors are returned as coded
// errors from internal/errors (E120, E121, E122, E123, E141).
package config
