package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrKind     = "kind"
)

// Resolve failure kinds recorded by the aggregator.
const (
	ResolveFailureConfiguration = "configuration"
	ResolveFailureValidation    = "validation"
)
