package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitHost     string
	RabbitPort     string
	RabbitUser     string
	RabbitPassword string

	// OverdueThreshold is how long a New or Preparing order may sit before
	// the overdue sweep warns about it, e.g. "45m".
	OverdueThreshold string
}
