package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbq191/dockergen/internal/config"
	"github.com/bbq191/dockergen/internal/dockerfile"
	"github.com/bbq191/dockergen/internal/interactive"
)

var (
	genBaseOS      string
	genGolang      bool
	genGoVersion   string
	genRust        bool
	genPython      bool
	genNodeJS      bool
	genNodeVersion string
	genJava        bool
	genJavaVersion string
	genAll         bool
	genOutput      string
	genTemplate    string
	genDryRun      bool
	genForce       bool
	genBackup      bool
	genInteractive bool
)

// generateCmd 生成 Dockerfile 命令
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "生成 Dockerfile",
	Long: `根据基础镜像系列和语言选择生成 Dockerfile。

示例:
  dockergen generate --base ubuntu --python          # Ubuntu + Python
  dockergen generate --base alpine --golang --nodejs # Alpine + Go + Node.js
  dockergen generate --all                           # 包含所有语言
  dockergen generate --golang --go-version 1.21.0 \
      --nodejs --node-version 18 -o MyDockerfile     # 自定义版本和输出文件
  dockergen generate --interactive                   # 交互式选择`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// 基础镜像系列
	generateCmd.Flags().StringVar(&genBaseOS, "base", "", "基础镜像系列 (ubuntu 或 alpine)")

	// 语言选择
	generateCmd.Flags().BoolVar(&genGolang, "golang", false, "包含 Go 工具链")
	generateCmd.Flags().StringVar(&genGoVersion, "go-version", "", "Go 版本")
	generateCmd.Flags().BoolVar(&genRust, "rust", false, "包含 Rust 工具链")
	generateCmd.Flags().BoolVar(&genPython, "python", false, "包含 Python 工具链")
	generateCmd.Flags().BoolVar(&genNodeJS, "nodejs", false, "包含 Node.js 工具链")
	generateCmd.Flags().StringVar(&genNodeVersion, "node-version", "", "Node.js 主版本")
	generateCmd.Flags().BoolVar(&genJava, "java", false, "包含 Java 工具链")
	generateCmd.Flags().StringVar(&genJavaVersion, "java-version", "", "Java 版本")
	generateCmd.Flags().BoolVar(&genAll, "all", false, "包含所有语言")

	// 输出控制
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "输出文件路径")
	generateCmd.Flags().StringVar(&genTemplate, "template", "", "可选的头部模板文件路径")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "预览模式，不实际生成文件")
	generateCmd.Flags().BoolVar(&genForce, "force", false, "强制覆盖现有文件")
	generateCmd.Flags().BoolVar(&genBackup, "backup", false, "备份现有文件")
	generateCmd.Flags().BoolVarP(&genInteractive, "interactive", "i", false, "交互式选择构建选项")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := GetLogger()

	logger.Info("🎯 开始 Dockerfile 生成流程")

	// 加载本次调用的默认值记录
	loader := config.NewLoader(viper.GetViper(), logger)
	defaults, err := loader.Load()
	if err != nil {
		logger.Errorf("加载默认值失败: %v", err)
		return fmt.Errorf("加载默认值失败: %w", err)
	}

	var raw *dockerfile.RawOptions
	if genInteractive {
		selector := interactive.NewSelector(defaults, logger)
		raw, err = selector.Run()
		if err != nil {
			return err
		}
		raw.TemplatePath = genTemplate
	} else {
		raw = buildRawOptions()
	}

	outputPath := genOutput
	if outputPath == "" {
		outputPath = defaults.Output
	}

	generator := dockerfile.NewGenerator(defaults, logger)
	opts, result, err := generator.Generate(raw, dockerfile.GenerateOptions{
		OutputPath:     outputPath,
		DryRun:         genDryRun,
		Force:          genForce,
		BackupExisting: genBackup,
	})
	if err != nil {
		logger.Errorf("生成失败: %v", err)
		return err
	}

	// 生成结果回顾
	if genDryRun {
		fmt.Printf("\n📋 预览完成！未写入文件\n")
	} else {
		fmt.Printf("\nDockerfile 已生成: %s\n", result.OutputPath)
	}
	printSummary(opts)

	if !genDryRun {
		printNextSteps(result.OutputPath)
	}

	return nil
}

// buildRawOptions 把命令行参数整理为原始选项
func buildRawOptions() *dockerfile.RawOptions {
	return &dockerfile.RawOptions{
		BaseOS: genBaseOS,
		Languages: map[dockerfile.Language]bool{
			dockerfile.LangGo:     genGolang,
			dockerfile.LangRust:   genRust,
			dockerfile.LangPython: genPython,
			dockerfile.LangNodeJS: genNodeJS,
			dockerfile.LangJava:   genJava,
		},
		Versions: map[dockerfile.Language]string{
			dockerfile.LangGo:     genGoVersion,
			dockerfile.LangNodeJS: genNodeVersion,
			dockerfile.LangJava:   genJavaVersion,
		},
		All:          genAll,
		TemplatePath: genTemplate,
	}
}

// printSummary 打印最终构建选项的人类可读回顾
func printSummary(opts *dockerfile.BuildOptions) {
	fmt.Printf("基础镜像系列: %s\n", opts.BaseOS)

	langs := opts.EnabledLanguages()
	if len(langs) == 0 {
		fmt.Println("未启用任何语言工具链")
		return
	}

	fmt.Println("包含的语言:")
	for _, lang := range langs {
		if version, ok := opts.Versions[lang]; ok {
			fmt.Printf("  • %s %s\n", lang.DisplayName(), version)
		} else {
			fmt.Printf("  • %s (latest)\n", lang.DisplayName())
		}
	}
}

// printNextSteps 打印后续操作提示
func printNextSteps(outputPath string) {
	fmt.Println("\n📋 后续步骤:")
	fmt.Printf("1. 检查生成结果: cat %s\n", outputPath)
	fmt.Printf("2. 构建镜像: docker build -t my-image -f %s .\n", outputPath)
	fmt.Println("3. 运行容器: docker run -it --rm my-image")
}
