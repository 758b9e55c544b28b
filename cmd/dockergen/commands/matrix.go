package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbq191/dockergen/internal/config"
	"github.com/bbq191/dockergen/internal/dockerfile"
)

var (
	matrixOutputDir string
	matrixForce     bool
	matrixQuiet     bool
)

// matrixCmd 多变体矩阵生成命令
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "一次生成所有镜像系列的 Dockerfile 变体",
	Long: `对同一组语言选择并行生成 Ubuntu 和 Alpine 两个系列的
Dockerfile 变体，输出为 Dockerfile.ubuntu 和 Dockerfile.alpine。

示例:
  dockergen matrix --golang --python           # 两个系列各一份
  dockergen matrix --all --output-dir=build    # 指定输出目录`,
	RunE: runMatrix,
}

func init() {
	rootCmd.AddCommand(matrixCmd)

	// 语言选择与 generate 命令共用同一组标志变量
	matrixCmd.Flags().BoolVar(&genGolang, "golang", false, "包含 Go 工具链")
	matrixCmd.Flags().StringVar(&genGoVersion, "go-version", "", "Go 版本")
	matrixCmd.Flags().BoolVar(&genRust, "rust", false, "包含 Rust 工具链")
	matrixCmd.Flags().BoolVar(&genPython, "python", false, "包含 Python 工具链")
	matrixCmd.Flags().BoolVar(&genNodeJS, "nodejs", false, "包含 Node.js 工具链")
	matrixCmd.Flags().StringVar(&genNodeVersion, "node-version", "", "Node.js 主版本")
	matrixCmd.Flags().BoolVar(&genJava, "java", false, "包含 Java 工具链")
	matrixCmd.Flags().StringVar(&genJavaVersion, "java-version", "", "Java 版本")
	matrixCmd.Flags().BoolVar(&genAll, "all", false, "包含所有语言")

	matrixCmd.Flags().StringVarP(&matrixOutputDir, "output-dir", "o", ".", "输出目录")
	matrixCmd.Flags().BoolVar(&matrixForce, "force", false, "强制覆盖现有文件")
	matrixCmd.Flags().BoolVarP(&matrixQuiet, "quiet", "q", false, "不显示进度条")
}

func runMatrix(cmd *cobra.Command, args []string) error {
	logger := GetLogger()

	logger.Info("🎯 开始矩阵生成流程")

	loader := config.NewLoader(viper.GetViper(), logger)
	defaults, err := loader.Load()
	if err != nil {
		return fmt.Errorf("加载默认值失败: %w", err)
	}

	raw := buildRawOptions()

	generator := dockerfile.NewGenerator(defaults, logger)
	matrixGen := dockerfile.NewMatrixGenerator(generator, logger)

	results, err := matrixGen.GenerateMatrix(cmd.Context(), raw, dockerfile.MatrixOptions{
		OutputDir: matrixOutputDir,
		Force:     matrixForce,
		Quiet:     matrixQuiet,
	})
	if err != nil {
		return fmt.Errorf("矩阵生成失败: %w", err)
	}

	failureCount := 0
	for _, result := range results {
		if !result.Success {
			failureCount++
		}
	}

	if failureCount > 0 {
		return fmt.Errorf("部分变体生成失败，请检查错误信息")
	}

	return nil
}
