package dockerfile

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// renderText 渲染并序列化一组原始选项，验证失败时直接终止测试
func renderText(t *testing.T, raw *RawOptions) string {
	t.Helper()

	ov := NewOptionValidator(logrus.New())
	opts, err := ov.Validate(raw, testDefaults())
	if err != nil {
		t.Fatalf("选项验证失败: %v", err)
	}

	renderer := NewRenderer(logrus.New())
	doc, err := renderer.Render(opts)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}

	return Serialize(doc)
}

// countLinesWithPrefix 统计以指定前缀开头的行数
func countLinesWithPrefix(content, prefix string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	return count
}

// TestRenderSingleFromAndCmd 测试任意选项组合下 FROM 和 CMD 各只出现一次
func TestRenderSingleFromAndCmd(t *testing.T) {
	cases := []struct {
		name string
		raw  *RawOptions
	}{
		{"ubuntu 无语言", &RawOptions{BaseOS: "ubuntu"}},
		{"alpine 无语言", &RawOptions{BaseOS: "alpine"}},
		{"ubuntu 全语言", &RawOptions{BaseOS: "ubuntu", All: true}},
		{"alpine 全语言", &RawOptions{BaseOS: "alpine", All: true}},
		{"ubuntu 部分语言", &RawOptions{BaseOS: "ubuntu", Languages: map[Language]bool{LangGo: true, LangPython: true}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := renderText(t, tc.raw)

			if n := countLinesWithPrefix(content, "FROM "); n != 1 {
				t.Errorf("期望恰好 1 条 FROM 指令，实际为 %d", n)
			}
			if n := countLinesWithPrefix(content, "CMD "); n != 1 {
				t.Errorf("期望恰好 1 条 CMD 指令，实际为 %d", n)
			}
			// 文本替换方案的典型缺陷：注释掉的备选指令残留在输出里
			if strings.Contains(content, "# FROM") || strings.Contains(content, "# CMD") {
				t.Error("输出中不应存在注释掉的 FROM/CMD 指令")
			}
		})
	}
}

// TestRenderExcludedLanguagesAbsent 测试未启用语言的内容完全不出现
func TestRenderExcludedLanguagesAbsent(t *testing.T) {
	// 只启用 Python，其余语言的任何痕迹都不应出现
	content := renderText(t, &RawOptions{
		BaseOS:    "ubuntu",
		Languages: map[Language]bool{LangPython: true},
	})

	forbidden := []string{
		"go.dev",     // Go 下载地址
		"GOPATH",     // Go 环境变量
		"rustup",     // Rust 安装脚本
		".cargo",     // Rust 环境变量
		"nodesource", // Node.js 软件源
		"NPM_CONFIG", // Node.js 环境变量
		"openjdk",    // Java 包名
		"JAVA_HOME",  // Java 环境变量
	}
	for _, marker := range forbidden {
		if strings.Contains(strings.ToLower(content), strings.ToLower(marker)) {
			t.Errorf("未启用语言的内容 %q 不应出现在输出中", marker)
		}
	}

	if !strings.Contains(content, "python3") {
		t.Error("已启用的 Python 段应该出现在输出中")
	}
}

// TestRenderMinimalUbuntu 测试不选语言时的最小文档
func TestRenderMinimalUbuntu(t *testing.T) {
	content := renderText(t, &RawOptions{BaseOS: "ubuntu"})

	if !strings.Contains(content, "FROM ubuntu:22.04") {
		t.Error("基础镜像行应该标识 Ubuntu 系列")
	}
	if !strings.Contains(content, "WORKDIR /workspace") {
		t.Error("工作目录段应该始终生成")
	}
	if !strings.Contains(content, `CMD ["/bin/bash"]`) {
		t.Error("默认命令应该使用 Ubuntu 系列的 shell")
	}

	// 最小文档只含基础、工作目录、默认命令三个关注点
	for _, lang := range AllLanguages {
		if strings.Contains(content, "# "+lang.DisplayName()+" toolchain") {
			t.Errorf("最小文档不应包含语言段 %s", lang)
		}
	}
}

// TestRenderAlpineNodeScenario 测试 alpine + Node.js 18 场景
func TestRenderAlpineNodeScenario(t *testing.T) {
	content := renderText(t, &RawOptions{
		BaseOS:    "alpine",
		Languages: map[Language]bool{LangNodeJS: true},
		Versions:  map[Language]string{LangNodeJS: "18"},
	})

	if !strings.Contains(content, "FROM alpine:latest") {
		t.Error("基础镜像行应该标识 Alpine 系列")
	}
	// Alpine 变体直接走 apk，不添加第三方软件源
	if !strings.Contains(content, "apk add --no-cache nodejs=~18") {
		t.Error("Node.js 段应该使用 Alpine 的 apk 安装变体并带版本 18")
	}
	if strings.Contains(content, "nodesource") {
		t.Error("Alpine 变体不应包含第三方软件源配置")
	}
	if !strings.Contains(content, `CMD ["/bin/ash"]`) {
		t.Error("默认命令应该使用 Alpine 系列的 shell")
	}
}

// TestRenderUbuntuGoJavaScenario 测试 ubuntu + Go 1.21.0 + Java 21 场景
func TestRenderUbuntuGoJavaScenario(t *testing.T) {
	content := renderText(t, &RawOptions{
		BaseOS:    "ubuntu",
		Languages: map[Language]bool{LangGo: true, LangJava: true},
		Versions:  map[Language]string{LangGo: "1.21.0", LangJava: "21"},
	})

	// Go 的下载解压步骤恰好引用一次版本字符串
	if n := strings.Count(content, "1.21.0"); n != 1 {
		t.Errorf("Go 版本 1.21.0 应该恰好出现 1 次，实际为 %d", n)
	}
	if !strings.Contains(content, "go.dev/dl/go1.21.0.linux-amd64.tar.gz") {
		t.Error("Go 段应该通过 tarball 安装并替换版本")
	}

	// Java 版本同时出现在包名和 JAVA_HOME 路径中
	if !strings.Contains(content, "openjdk-21-jdk") {
		t.Error("Java 包名应该包含版本 21")
	}
	if !strings.Contains(content, "JAVA_HOME=/usr/lib/jvm/java-21-openjdk-amd64") {
		t.Error("JAVA_HOME 路径应该由版本 21 推导")
	}
}

// TestRenderVersionScoping 测试版本字符串不会替换进无关段落
func TestRenderVersionScoping(t *testing.T) {
	// Node.js 主版本选用 "22"，与 ubuntu:22.04 中的 22 同形，
	// 占位符替换不应影响无关文本
	content := renderText(t, &RawOptions{
		BaseOS:    "ubuntu",
		Languages: map[Language]bool{LangNodeJS: true},
		Versions:  map[Language]string{LangNodeJS: "22"},
	})

	if !strings.Contains(content, "FROM ubuntu:22.04") {
		t.Error("基础镜像行不应被版本替换影响")
	}
	if !strings.Contains(content, "node_22.x") {
		t.Error("Node.js 软件源应该引用版本 22")
	}
}

// TestRenderFixedLanguageOrder 测试语言段的固定顺序
func TestRenderFixedLanguageOrder(t *testing.T) {
	content := renderText(t, &RawOptions{BaseOS: "ubuntu", All: true})

	markers := []string{
		"# Go toolchain",
		"# Rust toolchain",
		"# Python toolchain",
		"# Node.js toolchain",
		"# Java toolchain",
	}

	last := -1
	for _, marker := range markers {
		pos := strings.Index(content, marker)
		if pos < 0 {
			t.Fatalf("全语言输出中缺少段落 %q", marker)
		}
		if pos <= last {
			t.Errorf("段落 %q 的位置违反固定顺序", marker)
		}
		last = pos
	}
}

// TestRenderIdempotent 测试同样输入的输出逐字节一致
func TestRenderIdempotent(t *testing.T) {
	raw := &RawOptions{
		BaseOS:    "alpine",
		Languages: map[Language]bool{LangGo: true, LangRust: true, LangJava: true},
	}

	first := renderText(t, raw)
	second := renderText(t, raw)

	if first != second {
		t.Error("两次渲染同样的选项应该得到逐字节一致的输出")
	}
}

// TestRenderAllEqualsManual 测试 --all 与逐个启用的输出完全一致
func TestRenderAllEqualsManual(t *testing.T) {
	fromAll := renderText(t, &RawOptions{BaseOS: "ubuntu", All: true})
	manual := renderText(t, &RawOptions{
		BaseOS: "ubuntu",
		Languages: map[Language]bool{
			LangGo: true, LangRust: true, LangPython: true, LangNodeJS: true, LangJava: true,
		},
	})

	if fromAll != manual {
		t.Error("--all 的输出应该与手动启用全部语言的输出完全一致")
	}
}

// TestRenderCommonTools 测试两个系列都安装功能等价的通用工具集
func TestRenderCommonTools(t *testing.T) {
	ubuntu := renderText(t, &RawOptions{BaseOS: "ubuntu"})
	alpine := renderText(t, &RawOptions{BaseOS: "alpine"})

	for _, tool := range []string{"git", "curl", "wget", "ca-certificates"} {
		if !strings.Contains(ubuntu, tool) {
			t.Errorf("Ubuntu 通用工具集缺少 %s", tool)
		}
		if !strings.Contains(alpine, tool) {
			t.Errorf("Alpine 通用工具集缺少 %s", tool)
		}
	}

	// 编译工具链按系列使用各自的包名
	if !strings.Contains(ubuntu, "build-essential") {
		t.Error("Ubuntu 应该安装 build-essential")
	}
	if !strings.Contains(alpine, "build-base") {
		t.Error("Alpine 应该安装 build-base")
	}
}
