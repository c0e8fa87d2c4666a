package config

import (
	"errors"
	"fmt"
	"strings"

	"miniDS/datastruct/arraylist"

	"github.com/spf13/viper"
)

// 配置项的键，同时也是命令行参数名；环境变量为 MINIDS_ 前缀加大写、下划线形式
const (
	KeyCapacity = "capacity"
	KeyElements = "elements"
	KeyLogLevel = "log-level"
	KeyLogJSON  = "log-json"
	KeyConfig   = "config"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "MINIDS"

// WalkthroughProperties 定义了演示程序的全部配置
type WalkthroughProperties struct {
	Capacity int    `mapstructure:"capacity"`  // ArrayList 的初始容量
	Elements int    `mapstructure:"elements"`  // 每个结构压入的元素个数
	LogLevel string `mapstructure:"log-level"` // 日志级别
	LogJSON  bool   `mapstructure:"log-json"`  // 是否输出 JSON 日志

	// 配置文件的路径。
	CfPath string `mapstructure:"config"`
}

var Properties *WalkthroughProperties

func init() {
	Properties = defaults()
}

func defaults() *WalkthroughProperties {
	return &WalkthroughProperties{
		Capacity: arraylist.DefaultInitialCapacity,
		Elements: 20,
		LogLevel: "info",
	}
}

// Setup 依次读取默认值、配置文件、环境变量和已绑定的命令行参数，结果写入 Properties
func Setup() error {
	def := defaults()
	viper.SetDefault(KeyCapacity, def.Capacity)
	viper.SetDefault(KeyElements, def.Elements)
	viper.SetDefault(KeyLogLevel, def.LogLevel)
	viper.SetDefault(KeyLogJSON, def.LogJSON)
	viper.SetDefault(KeyConfig, "")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if path := viper.GetString(KeyConfig); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		viper.SetConfigName("miniDS")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	props := &WalkthroughProperties{}
	if err := viper.Unmarshal(props); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if props.Capacity < 0 {
		return &arraylist.IllegalCapacityErr{Capacity: props.Capacity}
	}
	if props.Elements < 0 {
		return fmt.Errorf("elements must not be negative, got %d", props.Elements)
	}
	Properties = props
	return nil
}
