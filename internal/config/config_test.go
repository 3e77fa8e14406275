package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
	for _, key := range []string{
		"KOHLE_HOST", "KOHLE_PORT", "STORAGE_TYPE", "REDIS_URL", "SQLITE_PATH", "LOG_LEVEL", PathEnvVar,
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigSuite) writeFile(content string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(Default(), *cfg)
	s.Equal(StorageMemory, cfg.Storage.Type)
	s.Equal(8080, cfg.Server.Port)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigSuite) TestYAMLFile() {
	path := s.writeFile(`
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5s
storage:
  type: redis
  redis:
    url: redis://cache:6379/1
    key_prefix: kohle
    state_ttl: 24h
log:
  level: debug
`)

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal("127.0.0.1", cfg.Server.Host)
	s.Equal(9090, cfg.Server.Port)
	s.Equal(5*time.Second, cfg.Server.ReadTimeout)
	s.Equal(30*time.Second, cfg.Server.ShutdownTimeout)
	s.Equal(StorageRedis, cfg.Storage.Type)
	s.Equal("redis://cache:6379/1", cfg.Storage.Redis.URL)
	s.Equal("kohle", cfg.Storage.Redis.KeyPrefix)
	s.Equal(24*time.Hour, cfg.Storage.Redis.StateTTL)
	s.Equal(10, cfg.Storage.Redis.PoolSize)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigSuite) TestEnvOverridesFile() {
	path := s.writeFile("server:\n  port: 9090\nstorage:\n  type: memory\n")
	s.T().Setenv("KOHLE_PORT", "7070")
	s.T().Setenv("STORAGE_TYPE", "SQLite")
	s.T().Setenv("SQLITE_PATH", "/tmp/kohle.db")
	s.T().Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal(7070, cfg.Server.Port)
	s.Equal(StorageSQLite, cfg.Storage.Type)
	s.Equal("/tmp/kohle.db", cfg.Storage.SQLite.Path)
	s.Equal(slog.LevelWarn, cfg.SlogLevel())
}

func (s *ConfigSuite) TestMissingFile() {
	_, err := Load(filepath.Join(s.dir, "nope.yaml"))
	s.Error(err)
}

func (s *ConfigSuite) TestMalformedFile() {
	path := s.writeFile("server: [unclosed")

	_, err := Load(path)
	s.Error(err)
}

func (s *ConfigSuite) TestInvalidEnvValue() {
	s.T().Setenv("KOHLE_PORT", "eighty")

	_, err := Load("")
	s.Error(err)
}

func (s *ConfigSuite) TestValidate() {
	cfg := Default()
	s.NoError(cfg.Validate())

	cfg.Server.Port = 0
	s.Error(cfg.Validate())

	cfg = Default()
	cfg.Storage.Type = "postgres"
	s.ErrorContains(cfg.Validate(), "unknown storage type")

	cfg = Default()
	cfg.Storage.Type = StorageRedis
	cfg.Storage.Redis.URL = ""
	s.ErrorContains(cfg.Validate(), "redis url")

	cfg = Default()
	cfg.Storage.Type = StorageSQLite
	cfg.Storage.SQLite.Path = " "
	s.ErrorContains(cfg.Validate(), "sqlite path")

	cfg = Default()
	cfg.Log.Level = "loud"
	s.ErrorContains(cfg.Validate(), "invalid log level")
}

func (s *ConfigSuite) TestResolvePath() {
	s.Equal("", ResolvePath(""))

	s.T().Setenv(PathEnvVar, "/etc/kohle.yaml")
	s.Equal("/etc/kohle.yaml", ResolvePath(""))
	s.Equal("local.yaml", ResolvePath("local.yaml"))
}
