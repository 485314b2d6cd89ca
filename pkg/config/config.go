package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	Kafka          Kafka
	Jobs           Jobs
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"notifications"`
	UserEventsTopic    string   `env:"KAFKA_USER_EVENTS_TOPIC" envDefault:"user-events"`
	ConsumerGroupID    string   `env:"KAFKA_CONSUMER_GROUP_ID" envDefault:"billtracker"`
}

type Jobs struct {
	DebtRemindersEnabled  bool          `env:"JOBS_DEBT_REMINDERS_ENABLED" envDefault:"true"`
	DebtRemindersInterval time.Duration `env:"JOBS_DEBT_REMINDERS_INTERVAL" envDefault:"24h"`
	DebtReminderMinAge    time.Duration `env:"JOBS_DEBT_REMINDER_MIN_AGE" envDefault:"168h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
