package config

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// TestLoadBuiltinDefaults 测试无配置文件时使用内置默认值
func TestLoadBuiltinDefaults(t *testing.T) {
	loader := NewLoader(viper.New(), logrus.New())

	defaults, err := loader.Load()
	if err != nil {
		t.Fatalf("加载内置默认值失败: %v", err)
	}

	if defaults.BaseOS != DefaultBaseOS {
		t.Errorf("期望默认镜像系列 %s，实际为 %s", DefaultBaseOS, defaults.BaseOS)
	}
	if defaults.GoVersion != DefaultGoVersion {
		t.Errorf("期望默认 Go 版本 %s，实际为 %s", DefaultGoVersion, defaults.GoVersion)
	}
	if defaults.NodeVersion != DefaultNodeVersion {
		t.Errorf("期望默认 Node.js 版本 %s，实际为 %s", DefaultNodeVersion, defaults.NodeVersion)
	}
	if defaults.JavaVersion != DefaultJavaVersion {
		t.Errorf("期望默认 Java 版本 %s，实际为 %s", DefaultJavaVersion, defaults.JavaVersion)
	}
	if defaults.Workdir != DefaultWorkdir {
		t.Errorf("期望默认工作目录 %s，实际为 %s", DefaultWorkdir, defaults.Workdir)
	}
	if defaults.Output != DefaultOutput {
		t.Errorf("期望默认输出文件 %s，实际为 %s", DefaultOutput, defaults.Output)
	}
}

// TestLoadConfigOverride 测试配置来源覆盖内置默认值
func TestLoadConfigOverride(t *testing.T) {
	v := viper.New()
	v.Set("base_os", "alpine")
	v.Set("go_version", "1.21.0")

	loader := NewLoader(v, logrus.New())
	defaults, err := loader.Load()
	if err != nil {
		t.Fatalf("加载失败: %v", err)
	}

	if defaults.BaseOS != "alpine" {
		t.Errorf("配置值应该覆盖内置默认镜像系列，实际为 %s", defaults.BaseOS)
	}
	if defaults.GoVersion != "1.21.0" {
		t.Errorf("配置值应该覆盖内置默认 Go 版本，实际为 %s", defaults.GoVersion)
	}
	// 未覆盖的项保持内置默认值
	if defaults.NodeVersion != DefaultNodeVersion {
		t.Errorf("未覆盖的 Node.js 版本应保持默认值，实际为 %s", defaults.NodeVersion)
	}
}

// TestLoadInvalidBaseOS 测试配置中的无效镜像系列
func TestLoadInvalidBaseOS(t *testing.T) {
	v := viper.New()
	v.Set("base_os", "gentoo")

	loader := NewLoader(v, logrus.New())
	_, err := loader.Load()
	if err == nil {
		t.Fatal("无效的 base_os 应该返回错误")
	}
	if !strings.Contains(err.Error(), "gentoo") {
		t.Errorf("错误信息应该指出出错的值: %v", err)
	}
}

// TestLoadRelativeWorkdir 测试工作目录必须是绝对路径
func TestLoadRelativeWorkdir(t *testing.T) {
	v := viper.New()
	v.Set("workdir", "workspace")

	loader := NewLoader(v, logrus.New())
	if _, err := loader.Load(); err == nil {
		t.Fatal("相对路径的工作目录应该返回错误")
	}
}
