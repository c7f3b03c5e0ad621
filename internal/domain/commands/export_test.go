package commands

// FirstPerDirectory exports firstPerDirectory for testing.
var FirstPerDirectory = firstPerDirectory //nolint:gochecknoglobals // test export

// NameWithoutExt exports nameWithoutExt for testing.
var NameWithoutExt = nameWithoutExt //nolint:gochecknoglobals // test export
