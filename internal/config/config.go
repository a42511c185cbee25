package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errJWTSecretTooShort error = errors.New("jwt secret must be at least 32 bytes")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
	publicDirEnvKey = "PUBLIC_DIR"

	defaultPublicDir = "public"

	minJWTSecretLen = 32
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	PublicDir       string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	// no default secret on purpose: the process must not come up signing
	// tokens with a value an attacker can guess
	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}
	if len(jwtSecret) < minJWTSecretLen {
		return App{}, errJWTSecretTooShort
	}

	publicDir, ok := os.LookupEnv(publicDirEnvKey)
	if !ok {
		publicDir = defaultPublicDir
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		PublicDir:       publicDir,
	}, nil
}
