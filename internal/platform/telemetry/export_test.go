package telemetry

// Collector exposes collector to the external test package.
var Collector = collector
