package recipe

// Specification of requested render output type.
// ENUM(text, json, yaml)
type OutputFmt int
