package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	s3publish "github.com/bnema/dreamai-cli/internal/adapters/publish/s3"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "DREAMAI"
	BaseURLEnv     = "DREAMAI_API_BASE_URL"
	EnvFileEnv     = "DREAMAI_ENV_FILE"
	DefaultBaseURL = "http://localhost:8000"

	KeyAPIBaseURL  = "api.base_url"
	KeyAPITimeout  = "api.timeout"
	KeyStorageDir  = "storage.dir"
	KeyHistoryPath = "history.path"
	KeyDownloadDir = "download.dir"
	KeyLogLevel    = "log.level"

	keyS3Endpoint      = "publish.s3.endpoint"
	keyS3Region        = "publish.s3.region"
	keyS3AccessKey     = "publish.s3.access_key"
	keyS3SecretKey     = "publish.s3.secret_key"
	keyS3Bucket        = "publish.s3.bucket"
	keyS3PublicBaseURL = "publish.s3.public_base_url"
	keyS3Prefix        = "publish.s3.prefix"
	keyS3UsePathStyle  = "publish.s3.use_path_style"

	configDirName  = ".dreamai"
	configFileName = "config"
	configFileType = "toml"
)

type Config struct {
	APIBaseURL  string
	APITimeout  string
	StorageDir  string
	HistoryPath string
	DownloadDir string
	LogLevel    string
	Publish     s3publish.Config
}

// Load resolves configuration from, in increasing priority, defaults,
// ~/.dreamai/config.toml, a .env file and the process environment. The
// returned viper instance carries the merged keys for adapters that read
// their own settings.
func Load(homeDir string) (Config, *viper.Viper, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, nil, err
	}

	v := viper.New()
	configDir := filepath.Join(homeDir, configDirName)
	v.SetDefault(KeyAPIBaseURL, DefaultBaseURL)
	v.SetDefault(KeyAPITimeout, "5m")
	v.SetDefault(KeyStorageDir, filepath.Join(configDir, "storage"))
	v.SetDefault(KeyHistoryPath, filepath.Join(configDir, "history.toml"))
	v.SetDefault(KeyDownloadDir, ".")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(keyS3Region, "us-east-1")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		APIBaseURL:  strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIBaseURL)), "/"),
		APITimeout:  v.GetString(KeyAPITimeout),
		StorageDir:  expandHome(v.GetString(KeyStorageDir), homeDir),
		HistoryPath: expandHome(v.GetString(KeyHistoryPath), homeDir),
		DownloadDir: expandHome(v.GetString(KeyDownloadDir), homeDir),
		LogLevel:    v.GetString(KeyLogLevel),
		Publish: s3publish.Config{
			Endpoint:      v.GetString(keyS3Endpoint),
			Region:        v.GetString(keyS3Region),
			AccessKey:     v.GetString(keyS3AccessKey),
			SecretKey:     v.GetString(keyS3SecretKey),
			Bucket:        v.GetString(keyS3Bucket),
			PublicBaseURL: v.GetString(keyS3PublicBaseURL),
			Prefix:        v.GetString(keyS3Prefix),
			UsePathStyle:  v.GetBool(keyS3UsePathStyle),
		},
	}
	if cfg.APIBaseURL == "" {
		return Config{}, nil, fmt.Errorf("%s is empty", BaseURLEnv)
	}
	v.Set(KeyHistoryPath, cfg.HistoryPath)

	return cfg, v, nil
}

// loadEnvFile reads DREAMAI_ENV_FILE or ./.env when present. Variables
// already set in the environment win over the file.
func loadEnvFile() error {
	path := ".env"
	if custom, ok := os.LookupEnv(EnvFileEnv); ok && custom != "" {
		path = custom
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("access env file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
