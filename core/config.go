package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf holds the application configuration. It is loaded once at start up
// from defaults, an optional `config/.env.<env>` file and environment variables.
var Conf *Config

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (default), TEST, QA, PROD
	Build    string
	AppName  string

	SecretKey        string
	DefaultFromEmail mail.Address
	SendgridApiKey   string
	RollbarToken     string

	// LegacyAdminFallbackPassword is the password accepted for Admin accounts
	// that have no password of their own. An empty value disables the
	// fallback; such accounts can then no longer log in.
	// This mirrors a legacy allowance of the original portal; it is surfaced
	// here so the behavior is intentional and testable either way.
	LegacyAdminFallbackPassword string

	Server struct {
		Host               string
		Port               string
		JWTExpirationDelta time.Duration
	}
}

func (conf Config) ServerAddress() string {
	return conf.Server.Host + ":" + conf.Server.Port
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Academia")
	v.SetDefault("secretKey", "x71=f&b$0u(twv&sgma-f+9b#^dyos(+b73gp3u0e+-b@k2!cq")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("legacyAdminFallbackPassword", "Ivamusic001")
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:                       v.GetBool("debug"),
		TestMode:                    v.GetBool("testMode"),
		Env:                         env,
		Build:                       v.GetString("build"),
		AppName:                     v.GetString("appName"),
		SecretKey:                   v.GetString("secretKey"),
		DefaultFromEmail:            mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		SendgridApiKey:              v.GetString("sendgridApiKey"),
		RollbarToken:                v.GetString("rollbarToken"),
		LegacyAdminFallbackPassword: v.GetString("legacyAdminFallbackPassword"),
	}
	Conf.Server.Host = v.GetString("serverHost")
	Conf.Server.Port = v.GetString("serverPort")
	Conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
}
