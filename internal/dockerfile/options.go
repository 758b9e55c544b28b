package dockerfile

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/bbq191/dockergen/internal/config"
)

// OptionValidator 构建选项验证器
//
// 负责把原始选项值转换为可渲染的 BuildOptions。
// 验证在任何渲染工作开始前完成，失败时不产生任何输出。
type OptionValidator struct {
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewOptionValidator 创建新的选项验证器
func NewOptionValidator(logger *logrus.Logger) *OptionValidator {
	return &OptionValidator{
		validator: validator.New(),
		logger:    logger,
	}
}

// Validate 验证原始选项并生成 BuildOptions
//
// 处理顺序：
//  1. --all 展开为所有语言的启用标记（纯展开，发生在版本验证之前）
//  2. 解析基础镜像系列，未识别的值返回 InvalidBaseOSError
//  3. 为每个已启用的带版本语言解析版本，空串返回 InvalidVersionError
//
// 未选择任何语言不是错误，渲染器仍会生成只含基础环境的最小文档。
func (ov *OptionValidator) Validate(raw *RawOptions, defaults *config.Defaults) (*BuildOptions, error) {
	languages := make(map[Language]bool, len(AllLanguages))
	for lang, enabled := range raw.Languages {
		languages[lang] = enabled
	}

	// --all 等价于逐个启用每种语言
	if raw.All {
		for _, lang := range AllLanguages {
			languages[lang] = true
		}
	}

	baseOS, err := ov.resolveBaseOS(raw.BaseOS, defaults)
	if err != nil {
		return nil, err
	}

	versions := make(map[Language]string)
	for _, lang := range AllLanguages {
		if !languages[lang] || !lang.Versioned() {
			// 版本条目只为已启用的带版本语言建立，
			// 避免版本字符串被错误套用到其他语言
			continue
		}

		version, err := ov.resolveVersion(lang, raw.Versions[lang], defaults)
		if err != nil {
			return nil, err
		}
		versions[lang] = version
	}

	workdir := raw.Workdir
	if workdir == "" {
		workdir = defaults.Workdir
	}

	opts := &BuildOptions{
		BaseOS:    baseOS,
		Languages: languages,
		Versions:  versions,
		Workdir:   workdir,
	}

	ov.logger.Debugf("选项验证通过: base=%s languages=%v", opts.BaseOS, opts.EnabledLanguages())
	return opts, nil
}

// resolveBaseOS 把镜像系列标识解析为枚举值，只在此处解析一次
func (ov *OptionValidator) resolveBaseOS(value string, defaults *config.Defaults) (BaseOS, error) {
	if value == "" {
		value = defaults.BaseOS
	}

	switch strings.ToLower(value) {
	case string(BaseUbuntu):
		return BaseUbuntu, nil
	case string(BaseAlpine):
		return BaseAlpine, nil
	default:
		return "", &InvalidBaseOSError{Value: value}
	}
}

// resolveVersion 解析单个语言的版本字符串
//
// 版本作为不透明文本接受，不做语义化版本解析，只要求非空。
func (ov *OptionValidator) resolveVersion(lang Language, value string, defaults *config.Defaults) (string, error) {
	if value == "" {
		switch lang {
		case LangGo:
			value = defaults.GoVersion
		case LangNodeJS:
			value = defaults.NodeVersion
		case LangJava:
			value = defaults.JavaVersion
		}
	}

	if err := ov.validator.Var(strings.TrimSpace(value), "required"); err != nil {
		return "", &InvalidVersionError{Language: lang, Value: value}
	}

	return value, nil
}
