package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbq191/dockergen/internal/config"
	"github.com/bbq191/dockergen/internal/dockerfile"
)

// infoCmd 显示支持范围和默认值命令
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "显示支持的镜像系列、语言和默认版本",
	Long: `显示当前支持的生成范围，包括：

• 基础镜像系列及其包管理器和默认 shell
• 可选的语言工具链
• 各语言的默认版本（含配置文件覆盖后的值）

该命令主要用于了解可用选项和当前生效的默认值。`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	logger := GetLogger()

	loader := config.NewLoader(viper.GetViper(), logger)
	defaults, err := loader.Load()
	if err != nil {
		return fmt.Errorf("加载默认值失败: %w", err)
	}

	// 显示镜像系列信息
	fmt.Println("=== 基础镜像系列 ===")
	for _, baseOS := range []dockerfile.BaseOS{dockerfile.BaseUbuntu, dockerfile.BaseAlpine} {
		marker := " "
		if string(baseOS) == defaults.BaseOS {
			marker = "*"
		}
		fmt.Printf("%s %-8s 镜像: %-16s shell: %s\n", marker, baseOS, baseOS.Image(), baseOS.Shell())
	}
	fmt.Println()

	// 显示语言工具链信息
	fmt.Println("=== 语言工具链 ===")
	for _, lang := range dockerfile.AllLanguages {
		if lang.Versioned() {
			fmt.Printf("  %-10s 默认版本: %s\n", lang.DisplayName(), defaultVersionFor(lang, defaults))
		} else {
			fmt.Printf("  %-10s 包管理器最新版本\n", lang.DisplayName())
		}
	}
	fmt.Println()

	// 显示其他默认值
	fmt.Println("=== 其他默认值 ===")
	fmt.Printf("工作目录: %s\n", defaults.Workdir)
	fmt.Printf("输出文件: %s\n", defaults.Output)

	return nil
}

// defaultVersionFor 取语言在当前默认值记录下的版本
func defaultVersionFor(lang dockerfile.Language, defaults *config.Defaults) string {
	switch lang {
	case dockerfile.LangGo:
		return defaults.GoVersion
	case dockerfile.LangNodeJS:
		return defaults.NodeVersion
	case dockerfile.LangJava:
		return defaults.JavaVersion
	default:
		return ""
	}
}
