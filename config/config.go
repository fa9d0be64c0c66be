package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"

	"visitadoras/internal/domain/constants"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "5MB"
	defaultMinPasswordLength  = 6
	defaultAccessTTL          = 15 * time.Minute
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultMaxVisitDistance   = 500.0
	defaultNearbyRadius       = 2000.0
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage configuration for signature images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for report verification codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Visits configuration for visit capture checks
	Visits *VisitsConfig `json:"visits" yaml:"visits"`

	// Report configuration for exports
	Report *ReportConfig `json:"report" yaml:"report"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
	AccessTTL         time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL        time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where signature images are written.
type StorageConfig struct {
	// Bucket URL understood by gocloud.dev/blob: file:///var/data, s3://bucket?region=x, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public base URL under which stored objects are served
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Key prefix (folder) for signatures
	SignatureBucket string `json:"signatureBucket" yaml:"signatureBucket"`

	// Maximum accepted signature size in bytes
	MaxSignatureBytes int `json:"maxSignatureBytes" yaml:"maxSignatureBytes"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens received by the notifier
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// VisitsConfig defines visit capture checks
type VisitsConfig struct {
	// Distance from the physician's registered point above which a visit is logged as far away
	MaxDistanceMeters float64 `json:"maxDistanceMeters" yaml:"maxDistanceMeters"`

	// Default radius for the nearby physician lookup
	NearbyRadiusMeters float64 `json:"nearbyRadiusMeters" yaml:"nearbyRadiusMeters"`
}

// ReportConfig defines export formatting
type ReportConfig struct {
	Timezone          string `json:"timezone" yaml:"timezone"`
	CurrencySymbol    string `json:"currencySymbol" yaml:"currencySymbol"`
	SignaturesPerPage int    `json:"signaturesPerPage" yaml:"signaturesPerPage"`
}

// Location resolves the configured report timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	name := constants.DefaultTimezone
	if c.Report != nil && c.Report.Timezone != "" {
		name = c.Report.Timezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}

	return loc
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = defaultMinPasswordLength
	}
	if cfg.Auth.AccessTTL <= 0 {
		cfg.Auth.AccessTTL = defaultAccessTTL
	}
	if cfg.Auth.RefreshTTL <= 0 {
		cfg.Auth.RefreshTTL = defaultRefreshTTL
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.SignatureBucket == "" {
		cfg.Storage.SignatureBucket = constants.DefaultSignatureBucket
	}
	if cfg.Storage.MaxSignatureBytes <= 0 {
		cfg.Storage.MaxSignatureBytes = constants.DefaultMaxSignatureBytes
	}

	if cfg.Visits == nil {
		cfg.Visits = &VisitsConfig{}
	}
	if cfg.Visits.MaxDistanceMeters <= 0 {
		cfg.Visits.MaxDistanceMeters = defaultMaxVisitDistance
	}
	if cfg.Visits.NearbyRadiusMeters <= 0 {
		cfg.Visits.NearbyRadiusMeters = defaultNearbyRadius
	}

	if cfg.Report == nil {
		cfg.Report = &ReportConfig{}
	}
	if cfg.Report.CurrencySymbol == "" {
		cfg.Report.CurrencySymbol = constants.DefaultCurrencySymbol
	}
	if cfg.Report.SignaturesPerPage <= 0 {
		cfg.Report.SignaturesPerPage = constants.DefaultSignaturesPerPage
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
