package configs

type Scheduler struct {
	SweepIntervalSeconds int `env:"ELECTION_SWEEP_INTERVAL_SECONDS" envDefault:"30"`
}
