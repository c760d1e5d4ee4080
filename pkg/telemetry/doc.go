// Package telemetry provides router observers for Prometheus metrics
// and OpenTelemetry traces. Attach them through the router config:
//
//	cfg.Observers = []router.Observer{
//	    telemetry.NewMetrics(telemetry.WithNamespace("myapp")),
//	    telemetry.NewTracing(),
//	}
package telemetry
