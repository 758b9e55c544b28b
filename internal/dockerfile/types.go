// Package dockerfile 提供 Dockerfile 的模型化生成系统，
// 从类型化的构建选项出发逐段构造文档，而不是对模板文件做文本替换
package dockerfile

// BaseOS 支持的基础镜像系列
type BaseOS string

const (
	BaseUbuntu BaseOS = "ubuntu" // Debian/Ubuntu 系列，apt-get + bash
	BaseAlpine BaseOS = "alpine" // Alpine 系列，apk + ash
)

// Shell 返回该系列容器的默认 shell 路径
func (os BaseOS) Shell() string {
	if os == BaseAlpine {
		return "/bin/ash"
	}
	return "/bin/bash"
}

// Image 返回该系列对应的基础镜像引用
func (os BaseOS) Image() string {
	if os == BaseAlpine {
		return "alpine:latest"
	}
	return "ubuntu:22.04"
}

// Language 支持的编程语言工具链
type Language string

const (
	LangGo     Language = "golang"
	LangRust   Language = "rust"
	LangPython Language = "python"
	LangNodeJS Language = "nodejs"
	LangJava   Language = "java"
)

// AllLanguages 语言段的固定生成顺序，保证同样输入的输出逐字节一致
var AllLanguages = []Language{LangGo, LangRust, LangPython, LangNodeJS, LangJava}

// Versioned 判断该语言是否带版本参数
//
// Rust 与 Python 始终通过包管理器安装最新版本，没有版本参数；
// Go、Node.js、Java 的版本字符串会被替换进安装段。
func (l Language) Versioned() bool {
	switch l {
	case LangGo, LangNodeJS, LangJava:
		return true
	default:
		return false
	}
}

// DisplayName 返回语言的展示名称
func (l Language) DisplayName() string {
	switch l {
	case LangGo:
		return "Go"
	case LangRust:
		return "Rust"
	case LangPython:
		return "Python"
	case LangNodeJS:
		return "Node.js"
	case LangJava:
		return "Java"
	default:
		return string(l)
	}
}

// RawOptions 来自命令行或交互式选择的原始选项值，尚未验证
type RawOptions struct {
	BaseOS       string              // 基础镜像系列标识
	Languages    map[Language]bool   // 每种语言的启用标记
	Versions     map[Language]string // 每种语言的版本字符串
	All          bool                // 启用全部语言（在验证前展开）
	TemplatePath string              // 可选的头部模板文件路径
	Workdir      string              // 容器内工作目录
}

// BuildOptions 验证通过后的构建选项，渲染器的唯一输入
type BuildOptions struct {
	BaseOS    BaseOS              // 已解析的镜像系列
	Languages map[Language]bool   // 每种语言的启用标记
	Versions  map[Language]string // 已启用语言的版本（仅对带版本语言有意义）
	Header    string              // 可选头部模板内容，为空则不生成头部段
	Workdir   string              // 容器内工作目录
}

// Enabled 判断某语言是否被选中
func (o *BuildOptions) Enabled(lang Language) bool {
	return o.Languages[lang]
}

// EnabledLanguages 按固定顺序返回所有被选中的语言
func (o *BuildOptions) EnabledLanguages() []Language {
	var langs []Language
	for _, lang := range AllLanguages {
		if o.Languages[lang] {
			langs = append(langs, lang)
		}
	}
	return langs
}

// Section 文档中的一个命名段落，位置固定、内容已渲染完成
type Section struct {
	Name string // 段落标识（base/workdir/语言名/cmd 等）
	Body string // 渲染后的段落正文，不含段落间空行
}

// RenderedDocument 渲染完成的 Dockerfile 文档
//
// 由渲染器一次性构造，构造完成后不再修改，序列化后即丢弃。
type RenderedDocument struct {
	Sections []Section // 按最终输出顺序排列的段落
}

// GenerateOptions 控制生成流程的选项
type GenerateOptions struct {
	OutputPath     string // 输出文件路径
	DryRun         bool   // 预览模式，只打印不写文件
	Force          bool   // 强制覆盖已存在的文件
	BackupExisting bool   // 覆盖前备份原文件
}

// GenerateResult 单次生成操作的结果
type GenerateResult struct {
	BaseOS     BaseOS // 本次生成使用的镜像系列
	OutputPath string // 输出文件完整路径
	Success    bool   // 是否成功
	BackupPath string // 原文件备份路径（如果做了备份）
	Error      error  // 失败原因
	Generated  bool   // 是否实际写出了文件（预览模式下为 false）
}
