package config

import (
	"time"

	"taskpulse/utils"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	Timeout         time.Duration
	DatabaseName    string
	RetryWrites     bool
	TodosCollection string
	UsersCollection string
	GoalsCollection string
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             getEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     getEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     getEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(getEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		Timeout:         getEnvAsDuration("MONGO_TIMEOUT", 10*time.Second),
		DatabaseName:    getEnvAsString("MONGO_DB", "taskpulse"),
		RetryWrites:     getEnvAsBool("MONGO_RETRY_WRITES", true),
		TodosCollection: getEnvAsString("TODOS_COLLECTION", "todos"),
		UsersCollection: getEnvAsString("USERS_COLLECTION", "users"),
		GoalsCollection: getEnvAsString("GOALS_COLLECTION", "goals"),
	}
}

// MongoOptions converts the config into client options.
func (c DatabaseConfig) MongoOptions() utils.MongoOptions {
	return utils.MongoOptions{
		URI:             c.URI,
		MaxPoolSize:     c.MaxPoolSize,
		MinPoolSize:     c.MinPoolSize,
		MaxConnIdleTime: c.MaxConnIdleTime,
		Timeout:         c.Timeout,
		RetryWrites:     c.RetryWrites,
	}
}
