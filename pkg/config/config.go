package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvDBDSN  = "ARTMOVE_DB_DSN"
	EnvDBHost = "ARTMOVE_DB_HOST"
	EnvDBUser = "ARTMOVE_DB_USER"
	EnvDBName = "ARTMOVE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Quotes        QuotesConfig
	Cron          CronConfig
	Outbox        OutboxConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ARTMOVE_APP_ENV" required:"true"`
	Port         string `envconfig:"ARTMOVE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ARTMOVE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ARTMOVE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ARTMOVE_DB_DSN"`
	Driver string `envconfig:"ARTMOVE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ARTMOVE_DB_HOST"`
	LegacyPort     int    `envconfig:"ARTMOVE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ARTMOVE_DB_USER"`
	LegacyPassword string `envconfig:"ARTMOVE_DB_PASSWORD"`
	LegacyName     string `envconfig:"ARTMOVE_DB_NAME"`
	LegacySSLMode  string `envconfig:"ARTMOVE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ARTMOVE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ARTMOVE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ARTMOVE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ARTMOVE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ARTMOVE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ARTMOVE_REDIS_ADDR"`
	Password     string        `envconfig:"ARTMOVE_REDIS_PASSWORD"`
	DB           int           `envconfig:"ARTMOVE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ARTMOVE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ARTMOVE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ARTMOVE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ARTMOVE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ARTMOVE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"ARTMOVE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"ARTMOVE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"ARTMOVE_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"ARTMOVE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ARTMOVE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ARTMOVE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ARTMOVE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ARTMOVE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ARTMOVE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"ARTMOVE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"ARTMOVE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"ARTMOVE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ARTMOVE_AUTO_MIGRATE" default:"false"`
}

// QuotesConfig holds the bidding-deadline invariants for auto-closing quotes.
type QuotesConfig struct {
	MinDeadlineLead   time.Duration `envconfig:"ARTMOVE_QUOTES_MIN_DEADLINE_LEAD" default:"1h"`
	DeadlineToArrival time.Duration `envconfig:"ARTMOVE_QUOTES_DEADLINE_TO_ARRIVAL" default:"48h"`
}

type CronConfig struct {
	TickInterval    time.Duration `envconfig:"ARTMOVE_CRON_TICK_INTERVAL" default:"1m"`
	LockTTL         time.Duration `envconfig:"ARTMOVE_CRON_LOCK_TTL" default:"5m"`
	ExpiryBatchSize int           `envconfig:"ARTMOVE_CRON_EXPIRY_BATCH_SIZE" default:"200"`
}

type OutboxConfig struct {
	FanoutBatchSize int           `envconfig:"ARTMOVE_OUTBOX_FANOUT_BATCH_SIZE" default:"50"`
	Retention       time.Duration `envconfig:"ARTMOVE_OUTBOX_RETENTION" default:"720h"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
