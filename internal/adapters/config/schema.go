package config

// Configfile represents the structure of the bytesum.yaml configuration file.
type Configfile struct {
	Concurrency int       `yaml:"concurrency"`
	BufferSize  int       `yaml:"buffer_size"`
	Report      ReportDTO `yaml:"report"`
}

// ReportDTO represents the report section of the configuration.
type ReportDTO struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}
