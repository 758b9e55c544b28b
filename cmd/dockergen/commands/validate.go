package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbq191/dockergen/internal/config"
	"github.com/bbq191/dockergen/internal/dockerfile"
)

// validateCmd 验证构建选项命令
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "验证构建选项和默认值配置",
	Long: `只运行选项验证，不渲染也不写任何文件。

验证项目:
  • 配置文件和默认值记录
  • 基础镜像系列取值
  • 已启用语言的版本字符串

示例:
  dockergen validate --base alpine --golang          # 验证一组选项
  dockergen validate --config=my.json                # 验证指定配置文件`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	// 与 generate 命令相同的选项表面
	validateCmd.Flags().StringVar(&genBaseOS, "base", "", "基础镜像系列 (ubuntu 或 alpine)")
	validateCmd.Flags().BoolVar(&genGolang, "golang", false, "包含 Go 工具链")
	validateCmd.Flags().StringVar(&genGoVersion, "go-version", "", "Go 版本")
	validateCmd.Flags().BoolVar(&genRust, "rust", false, "包含 Rust 工具链")
	validateCmd.Flags().BoolVar(&genPython, "python", false, "包含 Python 工具链")
	validateCmd.Flags().BoolVar(&genNodeJS, "nodejs", false, "包含 Node.js 工具链")
	validateCmd.Flags().StringVar(&genNodeVersion, "node-version", "", "Node.js 主版本")
	validateCmd.Flags().BoolVar(&genJava, "java", false, "包含 Java 工具链")
	validateCmd.Flags().StringVar(&genJavaVersion, "java-version", "", "Java 版本")
	validateCmd.Flags().BoolVar(&genAll, "all", false, "包含所有语言")
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := GetLogger()

	logger.Info("开始选项验证流程")

	// 默认值记录本身也要通过验证
	loader := config.NewLoader(viper.GetViper(), logger)
	defaults, err := loader.Load()
	if err != nil {
		fmt.Printf("❌ 默认值配置验证失败:\n%v\n", err)
		return err
	}

	validator := dockerfile.NewOptionValidator(logger)
	opts, err := validator.Validate(buildRawOptions(), defaults)
	if err != nil {
		fmt.Printf("❌ 构建选项验证失败:\n%v\n", err)
		return err
	}

	// 显示验证结果
	fmt.Println("✅ 构建选项验证通过")
	printSummary(opts)

	logger.Info("选项验证完成")
	return nil
}
