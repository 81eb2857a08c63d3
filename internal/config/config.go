package config

// GlobalConfig holds the global configuration for the application
type GlobalConfig struct {
	// Profile is the AWS profile to use. Empty means the SDK default
	// credential chain, which includes the AWS_ACCESS_KEY_ID and
	// AWS_SECRET_ACCESS_KEY environment variables.
	Profile string

	// Region is the region the pricing endpoint is addressed in. The
	// Pricing API is only served from us-east-1 and ap-south-1.
	Region string

	// LogFormat is the format for logging (text or json)
	LogFormat string

	// Pretty indent-formats the JSON written to stdout
	Pretty bool

	// StrictExit makes error responses exit nonzero instead of the
	// compatible always-zero behavior
	StrictExit bool
}

// Config is the global configuration instance
var Config = &GlobalConfig{
	Region: "us-east-1",
}
