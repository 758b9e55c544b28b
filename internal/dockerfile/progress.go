package dockerfile

import (
	"fmt"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// ProgressManager 矩阵生成的进度管理器
type ProgressManager struct {
	progressBar *progressbar.ProgressBar
	logger      *logrus.Logger
	mu          sync.Mutex
	results     []GenerateResult
	total       int
}

// NewProgressManager 创建进度管理器
//
// quiet 模式下不创建进度条，只记录结果。
func NewProgressManager(total int, logger *logrus.Logger, quiet bool) *ProgressManager {
	pm := &ProgressManager{
		logger: logger,
		total:  total,
	}

	if !quiet {
		pm.progressBar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("🐳 生成进度"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerPadding: "░",
				BarStart:      "▐",
				BarEnd:        "▌",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Printf("\n✨ 矩阵生成完成！\n\n")
			}),
			progressbar.OptionSetRenderBlankState(true),
		)
	}

	return pm
}

// Start 显示启动消息
func (pm *ProgressManager) Start() {
	if pm.progressBar != nil {
		fmt.Printf("🚀 准备生成 %d 个 Dockerfile 变体...\n\n", pm.total)
	}
}

// AddResult 记录一个变体的生成结果并推进进度条
func (pm *ProgressManager) AddResult(result GenerateResult) {
	pm.mu.Lock()
	pm.results = append(pm.results, result)
	pm.mu.Unlock()

	pm.logger.Debugf("变体 %s 完成，成功: %v", result.BaseOS, result.Success)

	if pm.progressBar != nil {
		pm.progressBar.Add(1)
	}
}

// Results 返回已记录结果的副本
func (pm *ProgressManager) Results() []GenerateResult {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	results := make([]GenerateResult, len(pm.results))
	copy(results, pm.results)
	return results
}

// PrintSummaryTable 打印每个变体的结果汇总
func (pm *ProgressManager) PrintSummaryTable() {
	results := pm.Results()

	fmt.Println("=== 生成结果 ===")
	for _, result := range results {
		if result.Success {
			fmt.Printf("  ✅ %-8s → %s\n", result.BaseOS, result.OutputPath)
		} else {
			fmt.Printf("  ❌ %-8s → %v\n", result.BaseOS, result.Error)
		}
	}
}
