package rest

type Config struct {
	Address   string  `env:"RUN_ADDRESS" envDefault:":8080"`
	Secret    string  `env:"SECRET_KEY" envDefault:"secret_key"`
	RateRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}
