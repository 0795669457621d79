package configs

type Bot struct {
	Token           string `env:"DISCORD_GOVERNMENT_BOT_TOKEN,notEmpty"`
	HealthCheckAddr string `env:"HEALTH_CHECK_ADDR" envDefault:":8080"`
}
