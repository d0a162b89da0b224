package config

// Config holds all configuration of the MCP server.
type Config struct {
	Google   GoogleConfig  `json:"google"`
	Server   ServerConfig  `json:"server"`
	Log      LogConfig     `json:"log"`
	Metrics  MetricsConfig `json:"metrics"`
	IsLambda bool          `json:"-"`
}

// GoogleConfig holds Google Workspace settings.
type GoogleConfig struct {
	AdminEmail        string `json:"admin_email"`
	CustomerID        string `json:"customer_id"`
	CredentialsFile   string `json:"credentials_file,omitempty"`
	CredentialsSecret string `json:"credentials_secret,omitempty"`
	VerifyCredentials bool   `json:"verify_credentials"`
}

// Transports.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Transport string `json:"transport"`
	HTTPAddr  string `json:"http_addr"`
	ReadOnly  bool   `json:"read_only"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	CloudWatchEnabled bool   `json:"cloudwatch_enabled"`
	Namespace         string `json:"namespace"`
	Region            string `json:"region"`
}
