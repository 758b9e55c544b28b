package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Loader 默认值加载器
type Loader struct {
	viper     *viper.Viper
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewLoader 创建新的默认值加载器
func NewLoader(v *viper.Viper, logger *logrus.Logger) *Loader {
	validate := validator.New()

	// 注册基础镜像系列验证规则
	validate.RegisterValidation("baseos", validateBaseOS)

	return &Loader{
		viper:     v,
		validator: validate,
		logger:    logger,
	}
}

// Load 构造并验证本次调用的默认值记录
func (l *Loader) Load() (*Defaults, error) {
	l.logger.Debug("开始加载默认值配置")

	// 内置默认值，优先级最低
	l.viper.SetDefault("base_os", DefaultBaseOS)
	l.viper.SetDefault("go_version", DefaultGoVersion)
	l.viper.SetDefault("node_version", DefaultNodeVersion)
	l.viper.SetDefault("java_version", DefaultJavaVersion)
	l.viper.SetDefault("workdir", DefaultWorkdir)
	l.viper.SetDefault("output", DefaultOutput)

	defaults := &Defaults{}
	if err := l.viper.Unmarshal(defaults); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 结构体标签验证
	if err := l.validator.Struct(defaults); err != nil {
		return nil, l.formatValidationError(err)
	}

	l.logger.Debugf("默认值加载完成: base_os=%s workdir=%s", defaults.BaseOS, defaults.Workdir)
	return defaults, nil
}

// formatValidationError 将 validator 错误转换为可读的提示
func (l *Loader) formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("配置验证失败: %w", err)
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "baseos":
			return fmt.Errorf("配置项 base_os 的值 %q 无效，支持的值: ubuntu, alpine", fieldErr.Value())
		case "required":
			return fmt.Errorf("配置项 %s 不能为空", fieldErr.Field())
		case "startswith":
			return fmt.Errorf("配置项 %s 必须是绝对路径: %v", fieldErr.Field(), fieldErr.Value())
		}
	}

	return fmt.Errorf("配置验证失败: %w", err)
}

// validateBaseOS 基础镜像系列取值验证
func validateBaseOS(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ubuntu", "alpine":
		return true
	default:
		return false
	}
}
