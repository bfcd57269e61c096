package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/storybite/storybite/internal/media"
	"github.com/storybite/storybite/internal/validate"
)

type configVar[T any] struct {
	envKey       string
	flagKey      string
	defaultValue T
	usage        string
}

var (
	port = configVar[int]{
		envKey:       "PORT",
		flagKey:      "port",
		defaultValue: 8080,
		usage:        "HTTP listen port",
	}
	baseURL = configVar[string]{
		envKey:       "BASE_URL",
		flagKey:      "base-url",
		defaultValue: "http://localhost:8080",
		usage:        "Public URL of the site",
	}
	logLevel = configVar[string]{
		envKey:       "LOG_LEVEL",
		flagKey:      "log-level",
		defaultValue: "info",
		usage:        "Logging level (debug, info, warn, error)",
	}
	mediaDir = configVar[string]{
		envKey:       "MEDIA_DIR",
		flagKey:      "media-dir",
		defaultValue: "",
		usage:        "Directory holding the showcase videos",
	}
	mediaSync = configVar[bool]{
		envKey:       "MEDIA_SYNC",
		flagKey:      "media-sync",
		defaultValue: false,
		usage:        "Upload videos missing from the bucket at startup",
	}
	mediaURLExpiry = configVar[time.Duration]{
		envKey:       "MEDIA_URL_EXPIRY",
		flagKey:      "media-url-expiry",
		defaultValue: media.DefaultURLExpiry,
		usage:        "Lifetime of presigned media URLs",
	}
	s3Endpoint = configVar[string]{
		envKey:       "S3_ENDPOINT",
		flagKey:      "s3-endpoint",
		defaultValue: "",
		usage:        "S3 endpoint; media is served locally when empty",
	}
	s3PublicEndpoint = configVar[string]{
		envKey:       "S3_PUBLIC_ENDPOINT",
		flagKey:      "s3-public-endpoint",
		defaultValue: "",
		usage:        "S3 endpoint used in presigned URLs",
	}
	s3Bucket = configVar[string]{
		envKey:       "S3_BUCKET",
		flagKey:      "s3-bucket",
		defaultValue: "storybite",
		usage:        "S3 bucket holding the showcase videos",
	}
	s3AccessKey = configVar[string]{
		envKey:       "S3_ACCESS_KEY",
		flagKey:      "s3-access-key",
		defaultValue: "",
		usage:        "S3 access key",
	}
	s3SecretKey = configVar[string]{
		envKey:       "S3_SECRET_KEY",
		flagKey:      "s3-secret-key",
		defaultValue: "",
		usage:        "S3 secret key",
	}
	s3Region = configVar[string]{
		envKey:       "S3_REGION",
		flagKey:      "s3-region",
		defaultValue: "eu-central-1",
		usage:        "S3 region",
	}
	geoIPDB = configVar[string]{
		envKey:       "GEOIP_DB",
		flagKey:      "geoip-db",
		defaultValue: "",
		usage:        "MaxMind city database used to locate diagnostics reports",
	}
	analyticsScript = configVar[string]{
		envKey:       "ANALYTICS_SCRIPT",
		flagKey:      "analytics-script",
		defaultValue: "",
		usage:        "URL of an analytics script added to both pages",
	}
)

type Config struct {
	Port             int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	BaseURL          string        `mapstructure:"base-url" validate:"required,http_url"`
	LogLevel         string        `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	MediaDir         string        `mapstructure:"media-dir"`
	MediaSync        bool          `mapstructure:"media-sync"`
	MediaURLExpiry   time.Duration `mapstructure:"media-url-expiry" validate:"gte=1m"`
	S3Endpoint       string        `mapstructure:"s3-endpoint" validate:"omitempty,http_url"`
	S3PublicEndpoint string        `mapstructure:"s3-public-endpoint" validate:"omitempty,http_url"`
	S3Bucket         string        `mapstructure:"s3-bucket" validate:"required_with=S3Endpoint"`
	S3AccessKey      string        `mapstructure:"s3-access-key" json:"-"`
	S3SecretKey      string        `mapstructure:"s3-secret-key" json:"-"`
	S3Region         string        `mapstructure:"s3-region"`
	GeoIPDB          string        `mapstructure:"geoip-db"`
	AnalyticsScript  string        `mapstructure:"analytics-script" validate:"omitempty,http_url"`
}

// UsesBucket reports whether media is served from S3 rather than MEDIA_DIR.
func (c Config) UsesBucket() bool {
	return c.S3Endpoint != ""
}

// loadConfig resolves settings from flags, then environment, then defaults.
func loadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("storybite", pflag.ContinueOnError)
	flags.Int(port.flagKey, port.defaultValue, port.usage)
	flags.String(baseURL.flagKey, baseURL.defaultValue, baseURL.usage)
	flags.String(logLevel.flagKey, logLevel.defaultValue, logLevel.usage)
	flags.String(mediaDir.flagKey, mediaDir.defaultValue, mediaDir.usage)
	flags.Bool(mediaSync.flagKey, mediaSync.defaultValue, mediaSync.usage)
	flags.Duration(mediaURLExpiry.flagKey, mediaURLExpiry.defaultValue, mediaURLExpiry.usage)
	flags.String(s3Endpoint.flagKey, s3Endpoint.defaultValue, s3Endpoint.usage)
	flags.String(s3PublicEndpoint.flagKey, s3PublicEndpoint.defaultValue, s3PublicEndpoint.usage)
	flags.String(s3Bucket.flagKey, s3Bucket.defaultValue, s3Bucket.usage)
	flags.String(s3AccessKey.flagKey, s3AccessKey.defaultValue, s3AccessKey.usage)
	flags.String(s3SecretKey.flagKey, s3SecretKey.defaultValue, s3SecretKey.usage)
	flags.String(s3Region.flagKey, s3Region.defaultValue, s3Region.usage)
	flags.String(geoIPDB.flagKey, geoIPDB.defaultValue, geoIPDB.usage)
	flags.String(analyticsScript.flagKey, analyticsScript.defaultValue, analyticsScript.usage)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	envKeys := map[string]string{
		port.flagKey:             port.envKey,
		baseURL.flagKey:          baseURL.envKey,
		logLevel.flagKey:         logLevel.envKey,
		mediaDir.flagKey:         mediaDir.envKey,
		mediaSync.flagKey:        mediaSync.envKey,
		mediaURLExpiry.flagKey:   mediaURLExpiry.envKey,
		s3Endpoint.flagKey:       s3Endpoint.envKey,
		s3PublicEndpoint.flagKey: s3PublicEndpoint.envKey,
		s3Bucket.flagKey:         s3Bucket.envKey,
		s3AccessKey.flagKey:      s3AccessKey.envKey,
		s3SecretKey.flagKey:      s3SecretKey.envKey,
		s3Region.flagKey:         s3Region.envKey,
		geoIPDB.flagKey:          geoIPDB.envKey,
		analyticsScript.flagKey:  analyticsScript.envKey,
	}
	for flagKey, envKey := range envKeys {
		if err := v.BindEnv(flagKey, envKey); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", envKey, err)
		}
	}

	cfg := Config{
		Port:             v.GetInt(port.flagKey),
		BaseURL:          strings.TrimRight(v.GetString(baseURL.flagKey), "/"),
		LogLevel:         strings.ToLower(v.GetString(logLevel.flagKey)),
		MediaDir:         v.GetString(mediaDir.flagKey),
		MediaSync:        v.GetBool(mediaSync.flagKey),
		MediaURLExpiry:   v.GetDuration(mediaURLExpiry.flagKey),
		S3Endpoint:       v.GetString(s3Endpoint.flagKey),
		S3PublicEndpoint: v.GetString(s3PublicEndpoint.flagKey),
		S3Bucket:         v.GetString(s3Bucket.flagKey),
		S3AccessKey:      v.GetString(s3AccessKey.flagKey),
		S3SecretKey:      v.GetString(s3SecretKey.flagKey),
		S3Region:         v.GetString(s3Region.flagKey),
		GeoIPDB:          v.GetString(geoIPDB.flagKey),
		AnalyticsScript:  v.GetString(analyticsScript.flagKey),
	}

	if err := validate.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
