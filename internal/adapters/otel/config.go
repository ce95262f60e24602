package otel

// Config holds OTEL exporter settings.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}
