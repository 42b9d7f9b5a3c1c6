package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS   CORSConfig
	Log    LogConfig
	Engine EngineConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// EngineConfig holds the ENGINE_* settings read from the environment,
// mirroring internal/dto.EngineConfig and internal/optimizer.Config. It is
// loaded but not passed to the schedule service; requests that leave a field
// at zero get optimizer.DefaultConfig's value, not this one.
type EngineConfig struct {
	PopulationSize int
	Generations    int
	PCrossover     float64
	PMutate        float64
	PGene          float64
	GreedyAttempts int
	RepairCycles   int
	RepairAttempts int
	Seed           int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Engine = EngineConfig{
		PopulationSize: v.GetInt("ENGINE_POPULATION_SIZE"),
		Generations:    v.GetInt("ENGINE_GENERATIONS"),
		PCrossover:     v.GetFloat64("ENGINE_P_CROSSOVER"),
		PMutate:        v.GetFloat64("ENGINE_P_MUTATE"),
		PGene:          v.GetFloat64("ENGINE_P_GENE"),
		GreedyAttempts: v.GetInt("ENGINE_GREEDY_ATTEMPTS"),
		RepairCycles:   v.GetInt("ENGINE_REPAIR_CYCLES"),
		RepairAttempts: v.GetInt("ENGINE_REPAIR_ATTEMPTS"),
		Seed:           v.GetInt64("ENGINE_SEED"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENGINE_POPULATION_SIZE", 200)
	v.SetDefault("ENGINE_GENERATIONS", 150)
	v.SetDefault("ENGINE_P_CROSSOVER", 0.9)
	v.SetDefault("ENGINE_P_MUTATE", 0.5)
	v.SetDefault("ENGINE_P_GENE", 0.05)
	v.SetDefault("ENGINE_GREEDY_ATTEMPTS", 50)
	v.SetDefault("ENGINE_REPAIR_CYCLES", 5)
	v.SetDefault("ENGINE_REPAIR_ATTEMPTS", 20)
	v.SetDefault("ENGINE_SEED", 0)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
