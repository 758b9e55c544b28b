// Package interactive 提供交互式的构建选项选择流程
package interactive

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"

	"github.com/bbq191/dockergen/internal/config"
	"github.com/bbq191/dockergen/internal/dockerfile"
)

// Selector 交互式选项选择器
type Selector struct {
	defaults *config.Defaults
	logger   *logrus.Logger
}

// NewSelector 创建交互式选择器
func NewSelector(defaults *config.Defaults, logger *logrus.Logger) *Selector {
	return &Selector{
		defaults: defaults,
		logger:   logger,
	}
}

// Run 执行完整的交互式选择流程
//
// 依次询问基础镜像系列、要包含的语言、各语言的版本，
// 最后确认后返回与命令行等价的原始选项。
func (s *Selector) Run() (*dockerfile.RawOptions, error) {
	if !isatty() {
		return nil, fmt.Errorf("交互模式不可用: 当前环境不是终端设备\n\n💡 解决方案:\n1. 在真正的终端中运行此命令\n2. 使用命令行参数: dockergen generate --base ubuntu --golang")
	}

	s.logger.Debug("启动交互式选择流程")

	baseOS, err := s.selectBaseOS()
	if err != nil {
		return nil, err
	}

	languages, err := s.selectLanguages()
	if err != nil {
		return nil, err
	}

	versions, err := s.inputVersions(languages)
	if err != nil {
		return nil, err
	}

	raw := &dockerfile.RawOptions{
		BaseOS:    baseOS,
		Languages: languages,
		Versions:  versions,
	}

	if err := s.confirm(raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// selectBaseOS 选择基础镜像系列
func (s *Selector) selectBaseOS() (string, error) {
	prompt := &survey.Select{
		Message: "请选择基础镜像系列:",
		Options: []string{
			"ubuntu - Ubuntu 22.04 (apt-get + bash)",
			"alpine - Alpine Linux (apk + ash)",
		},
		Default: fmt.Sprintf("%s - %s", s.defaults.BaseOS, baseOSDescription(s.defaults.BaseOS)),
		Help:    "决定包管理器、默认 shell 和各语言的安装方式",
	}

	var selection string
	if err := survey.AskOne(prompt, &selection); err != nil {
		return "", err
	}

	return strings.SplitN(selection, " ", 2)[0], nil
}

// selectLanguages 多选要包含的语言工具链
func (s *Selector) selectLanguages() (map[dockerfile.Language]bool, error) {
	var options []string
	for _, lang := range dockerfile.AllLanguages {
		options = append(options, lang.DisplayName())
	}

	prompt := &survey.MultiSelect{
		Message: "选择要安装的语言工具链 (空格键选择，回车键确认):",
		Options: options,
		Help:    "不选择任何语言也可以，会生成只含基础环境的最小镜像",
	}

	var selected []string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}

	languages := make(map[dockerfile.Language]bool)
	for _, name := range selected {
		for _, lang := range dockerfile.AllLanguages {
			if lang.DisplayName() == name {
				languages[lang] = true
			}
		}
	}

	return languages, nil
}

// inputVersions 为选中的带版本语言输入版本字符串
func (s *Selector) inputVersions(languages map[dockerfile.Language]bool) (map[dockerfile.Language]string, error) {
	versions := make(map[dockerfile.Language]string)

	for _, lang := range dockerfile.AllLanguages {
		if !languages[lang] || !lang.Versioned() {
			continue
		}

		prompt := &survey.Input{
			Message: fmt.Sprintf("%s 版本:", lang.DisplayName()),
			Default: s.defaultVersion(lang),
		}

		var version string
		if err := survey.AskOne(prompt, &version); err != nil {
			return nil, err
		}
		versions[lang] = version
	}

	return versions, nil
}

// confirm 显示选择结果并请求确认
func (s *Selector) confirm(raw *dockerfile.RawOptions) error {
	var preview strings.Builder
	preview.WriteString(fmt.Sprintf("🐳 基础镜像系列: %s\n", raw.BaseOS))

	count := 0
	for _, lang := range dockerfile.AllLanguages {
		if raw.Languages[lang] {
			count++
			if version, ok := raw.Versions[lang]; ok {
				preview.WriteString(fmt.Sprintf("  • %s %s\n", lang.DisplayName(), version))
			} else {
				preview.WriteString(fmt.Sprintf("  • %s\n", lang.DisplayName()))
			}
		}
	}
	if count == 0 {
		preview.WriteString("  （未选择任何语言）\n")
	}

	fmt.Print(preview.String())

	accept := false
	prompt := &survey.Confirm{
		Message: "按以上选择生成 Dockerfile?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &accept); err != nil {
		return err
	}
	if !accept {
		return fmt.Errorf("已取消生成")
	}

	return nil
}

// defaultVersion 取语言的默认版本
func (s *Selector) defaultVersion(lang dockerfile.Language) string {
	switch lang {
	case dockerfile.LangGo:
		return s.defaults.GoVersion
	case dockerfile.LangNodeJS:
		return s.defaults.NodeVersion
	case dockerfile.LangJava:
		return s.defaults.JavaVersion
	default:
		return ""
	}
}

// baseOSDescription 基础镜像系列的展示说明
func baseOSDescription(baseOS string) string {
	if baseOS == "alpine" {
		return "Alpine Linux (apk + ash)"
	}
	return "Ubuntu 22.04 (apt-get + bash)"
}

// isatty 检查是否为完整的终端环境
func isatty() bool {
	// survey 库需要标准输入和标准输出都是终端
	if fi, err := os.Stdin.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return false
	}
	if fi, err := os.Stdout.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return false
	}
	return true
}
