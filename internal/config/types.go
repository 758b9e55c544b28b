// Package config 提供 dockergen 的默认值配置，
// 每次调用构造一份 Defaults 记录并显式传递，不使用全局状态
package config

// 内置默认值，配置文件和命令行参数都缺省时使用
const (
	DefaultBaseOS      = "ubuntu"
	DefaultGoVersion   = "1.22.2"
	DefaultNodeVersion = "20"
	DefaultJavaVersion = "17"
	DefaultWorkdir     = "/workspace"
	DefaultOutput      = "Dockerfile"
)

// Defaults 单次调用的默认值记录
//
// 来源优先级：命令行参数 > 配置文件 (.dockergen.json) > 内置常量。
// 由 Loader 构造并验证，之后只读。
type Defaults struct {
	BaseOS      string `mapstructure:"base_os" validate:"required,baseos"`
	GoVersion   string `mapstructure:"go_version" validate:"required"`
	NodeVersion string `mapstructure:"node_version" validate:"required"`
	JavaVersion string `mapstructure:"java_version" validate:"required"`
	Workdir     string `mapstructure:"workdir" validate:"required,startswith=/"`
	Output      string `mapstructure:"output" validate:"required"`
}
