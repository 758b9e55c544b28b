package dockerfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MatrixOptions 矩阵生成的控制选项
type MatrixOptions struct {
	OutputDir string   // 输出目录，为空时使用当前目录
	Variants  []BaseOS // 要生成的镜像系列，为空时生成全部
	Force     bool     // 强制覆盖现有文件
	Quiet     bool     // 不显示进度条
}

// MatrixGenerator 多变体并行生成器
//
// 对同一组语言选项一次性生成多个镜像系列的 Dockerfile 变体，
// 每个变体独立渲染、独立写出，单个变体失败不影响其他变体。
type MatrixGenerator struct {
	generator *Generator
	logger    *logrus.Logger
}

// NewMatrixGenerator 创建矩阵生成器
func NewMatrixGenerator(generator *Generator, logger *logrus.Logger) *MatrixGenerator {
	return &MatrixGenerator{
		generator: generator,
		logger:    logger,
	}
}

// GenerateMatrix 并行生成所有请求的变体
//
// 返回每个变体的结果列表；只有在上下文被取消时返回整体错误。
func (mg *MatrixGenerator) GenerateMatrix(ctx context.Context, raw *RawOptions, opts MatrixOptions) ([]GenerateResult, error) {
	variants := opts.Variants
	if len(variants) == 0 {
		variants = []BaseOS{BaseUbuntu, BaseAlpine}
	}

	mg.logger.Infof("启动矩阵生成：%d 个变体", len(variants))

	progressMgr := NewProgressManager(len(variants), mg.logger, opts.Quiet)
	progressMgr.Start()

	g, ctx := errgroup.WithContext(ctx)

	for _, variant := range variants {
		variant := variant
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := mg.generateVariant(raw, variant, opts)
			progressMgr.AddResult(result)

			if result.Error != nil {
				// 记录失败但继续生成其他变体
				mg.logger.Errorf("变体 %s 生成失败: %v", variant, result.Error)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return progressMgr.Results(), fmt.Errorf("矩阵生成被中断: %w", err)
	}

	if !opts.Quiet {
		progressMgr.PrintSummaryTable()
	}

	results := progressMgr.Results()

	successful := 0
	for _, result := range results {
		if result.Success {
			successful++
		}
	}
	mg.logger.Infof("矩阵生成完成 - 成功: %d, 失败: %d", successful, len(results)-successful)

	return results, nil
}

// generateVariant 生成单个镜像系列的变体
func (mg *MatrixGenerator) generateVariant(raw *RawOptions, variant BaseOS, opts MatrixOptions) GenerateResult {
	// 每个变体使用独立的选项副本，只有镜像系列不同
	variantRaw := *raw
	variantRaw.BaseOS = string(variant)

	outputPath := filepath.Join(opts.OutputDir, fmt.Sprintf("Dockerfile.%s", variant))

	_, result, _ := mg.generator.Generate(&variantRaw, GenerateOptions{
		OutputPath: outputPath,
		Force:      opts.Force,
	})
	return result
}
