package dockerfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/bbq191/dockergen/internal/config"
)

// Generator 高级 Dockerfile 生成器
//
// 串联完整流水线：选项验证 → 渲染 → 序列化 → 原子写出。
// 流水线本身是同步的纯内存计算，唯一的外部交互是读取可选的
// 头部模板和写出结果文件。
type Generator struct {
	validator *OptionValidator
	renderer  *Renderer
	defaults  *config.Defaults
	logger    *logrus.Logger
}

// NewGenerator 创建新的生成器实例
func NewGenerator(defaults *config.Defaults, logger *logrus.Logger) *Generator {
	return &Generator{
		validator: NewOptionValidator(logger),
		renderer:  NewRenderer(logger),
		defaults:  defaults,
		logger:    logger,
	}
}

// Render 验证原始选项并渲染出最终文本，不接触文件系统
//
// 供预览模式和测试使用；验证错误在任何渲染工作开始前返回。
func (g *Generator) Render(raw *RawOptions) (*BuildOptions, string, error) {
	opts, err := g.validator.Validate(raw, g.defaults)
	if err != nil {
		return nil, "", err
	}

	// 头部模板是唯一可选的外部资源，缺失是调用方级 I/O 错误
	if raw.TemplatePath != "" {
		header, err := os.ReadFile(raw.TemplatePath)
		if err != nil {
			return nil, "", &TemplateNotFoundError{Path: raw.TemplatePath, Err: err}
		}
		opts.Header = string(header)
	}

	doc, err := g.renderer.Render(opts)
	if err != nil {
		return nil, "", err
	}

	return opts, Serialize(doc), nil
}

// Generate 执行完整的生成流程并写出结果文件
func (g *Generator) Generate(raw *RawOptions, genOpts GenerateOptions) (*BuildOptions, GenerateResult, error) {
	result := GenerateResult{
		OutputPath: genOpts.OutputPath,
		Generated:  !genOpts.DryRun,
	}

	opts, content, err := g.Render(raw)
	if err != nil {
		result.Error = err
		return nil, result, err
	}
	result.BaseOS = opts.BaseOS

	// 预览模式：只打印渲染结果
	if genOpts.DryRun {
		g.logger.Infof("📋 [预览] 将生成 %s", genOpts.OutputPath)
		fmt.Print(content)
		result.Success = true
		return opts, result, nil
	}

	// 检查输出文件是否已存在
	if _, err := os.Stat(genOpts.OutputPath); err == nil {
		if genOpts.BackupExisting {
			backupPath := genOpts.OutputPath + ".backup"
			if err := os.Rename(genOpts.OutputPath, backupPath); err != nil {
				result.Error = fmt.Errorf("备份现有文件失败: %w", err)
				return opts, result, result.Error
			}
			result.BackupPath = backupPath
			g.logger.Infof("已备份现有文件: %s", backupPath)
		} else if !genOpts.Force {
			result.Error = fmt.Errorf("文件已存在，使用 --force 强制覆盖: %s", genOpts.OutputPath)
			return opts, result, result.Error
		}
	}

	if err := writeFileAtomic(genOpts.OutputPath, content); err != nil {
		result.Error = err
		return opts, result, err
	}

	g.logger.Infof("✅ Dockerfile 生成成功: %s", genOpts.OutputPath)
	result.Success = true
	return opts, result, nil
}

// writeFileAtomic 原子写出结果文件
//
// 先写同目录下的临时文件再重命名到最终路径，进程中途被打断
// 也不会在最终文件名下留下写了一半的内容；任何失败都会清理
// 临时文件。写完后权限位固定为 0644。
func writeFileAtomic(path, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".dockergen-*")
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &OutputWriteError{Path: path, Err: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &OutputWriteError{Path: path, Err: err}
	}

	// 所有者读写，组和其他用户只读，无执行位
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return &OutputWriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &OutputWriteError{Path: path, Err: err}
	}

	return nil
}
