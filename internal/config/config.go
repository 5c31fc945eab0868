package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/packagewjx/eda-prep/internal/datasource"
	"github.com/packagewjx/eda-prep/internal/preprocess"
	"github.com/packagewjx/eda-prep/internal/split"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// 环境变量前缀，如EDA_USER
const EnvPrefix = "EDA"

const (
	KeyScheme   = "db.scheme"
	KeyUser     = "db.user"
	KeyPassword = "db.password"
	KeyHost     = "db.host"
	KeyCacheDir = "cache-dir"
	KeyFraction = "split.fraction"
	KeySeed     = "split.seed"
	KeyScaler   = "scaler"
)

const DefaultCacheDir = "."

// Credentials 数据库连接凭据
type Credentials struct {
	Scheme   string `default:"mysql" validate:"oneof=mysql postgres"`
	User     string
	Password string
	Host     string `default:"localhost" validate:"required"`
}

type Settings struct {
	DB           Credentials
	CacheDir     string  `validate:"required"`
	TestFraction float64 `validate:"gt=0,lt=1"`
	Seed         int64
	Scaler       string `validate:"oneof=minmax standard robust"`
}

// Descriptor 返回连接database的描述
func (s *Settings) Descriptor(database string) datasource.Descriptor {
	return datasource.Descriptor{
		Scheme:   s.DB.Scheme,
		User:     s.DB.User,
		Password: s.DB.Password,
		Host:     s.DB.Host,
		Database: database,
	}
}

// Load 优先级从低到高：默认值、EDA_*环境变量、v中已设置的值（配置文件或命令行参数）
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		CacheDir:     DefaultCacheDir,
		TestFraction: split.DefaultTestFraction,
		Seed:         split.DefaultSeed,
		Scaler:       string(preprocess.MinMax),
	}
	if err := envconfig.Process(EnvPrefix, &s.DB); err != nil {
		return nil, errors.Wrap(err, "读取环境变量出错")
	}

	if v != nil {
		if v.IsSet(KeyScheme) {
			s.DB.Scheme = v.GetString(KeyScheme)
		}
		if v.IsSet(KeyUser) {
			s.DB.User = v.GetString(KeyUser)
		}
		if v.IsSet(KeyPassword) {
			s.DB.Password = v.GetString(KeyPassword)
		}
		if v.IsSet(KeyHost) {
			s.DB.Host = v.GetString(KeyHost)
		}
		if v.IsSet(KeyCacheDir) {
			s.CacheDir = v.GetString(KeyCacheDir)
		}
		if v.IsSet(KeyFraction) {
			s.TestFraction = v.GetFloat64(KeyFraction)
		}
		if v.IsSet(KeySeed) {
			s.Seed = v.GetInt64(KeySeed)
		}
		if v.IsSet(KeyScaler) {
			s.Scaler = v.GetString(KeyScaler)
		}
	}

	if err := validator.New().Struct(s); err != nil {
		return nil, errors.Wrap(err, "配置有误")
	}
	return s, nil
}
