package dockerfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestGenerateMatrix 测试矩阵模式生成两个系列的变体
func TestGenerateMatrix(t *testing.T) {
	dir := t.TempDir()

	g := NewGenerator(testDefaults(), logrus.New())
	mg := NewMatrixGenerator(g, logrus.New())

	results, err := mg.GenerateMatrix(context.Background(), &RawOptions{
		Languages: map[Language]bool{LangGo: true},
	}, MatrixOptions{
		OutputDir: dir,
		Quiet:     true,
	})
	if err != nil {
		t.Fatalf("矩阵生成失败: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("期望 2 个变体结果，实际为 %d", len(results))
	}
	for _, result := range results {
		if !result.Success {
			t.Errorf("变体 %s 生成失败: %v", result.BaseOS, result.Error)
		}
	}

	ubuntu, err := os.ReadFile(filepath.Join(dir, "Dockerfile.ubuntu"))
	if err != nil {
		t.Fatalf("读取 Ubuntu 变体失败: %v", err)
	}
	alpine, err := os.ReadFile(filepath.Join(dir, "Dockerfile.alpine"))
	if err != nil {
		t.Fatalf("读取 Alpine 变体失败: %v", err)
	}

	if !strings.Contains(string(ubuntu), "FROM ubuntu:22.04") {
		t.Error("Ubuntu 变体应该使用 Ubuntu 基础镜像")
	}
	if !strings.Contains(string(alpine), "FROM alpine:latest") {
		t.Error("Alpine 变体应该使用 Alpine 基础镜像")
	}
	if string(ubuntu) == string(alpine) {
		t.Error("两个系列的变体内容不应相同")
	}

	// 语言选择对两个变体同时生效
	if !strings.Contains(string(ubuntu), "go.dev/dl/go") {
		t.Error("Ubuntu 变体应该通过 tarball 安装 Go")
	}
	if !strings.Contains(string(alpine), "apk add --no-cache go=~") {
		t.Error("Alpine 变体应该通过 apk 安装 Go")
	}
}

// TestGenerateMatrixPartialFailure 测试单个变体失败不影响其他变体
func TestGenerateMatrixPartialFailure(t *testing.T) {
	dir := t.TempDir()

	// 预先占住 Ubuntu 变体的文件名且不加 --force，使该变体失败
	blocked := filepath.Join(dir, "Dockerfile.ubuntu")
	if err := os.WriteFile(blocked, []byte("existing"), 0644); err != nil {
		t.Fatalf("准备现有文件失败: %v", err)
	}

	g := NewGenerator(testDefaults(), logrus.New())
	mg := NewMatrixGenerator(g, logrus.New())

	results, err := mg.GenerateMatrix(context.Background(), &RawOptions{}, MatrixOptions{
		OutputDir: dir,
		Quiet:     true,
	})
	if err != nil {
		t.Fatalf("矩阵生成整体不应失败: %v", err)
	}

	var ubuntuResult, alpineResult *GenerateResult
	for i := range results {
		switch results[i].BaseOS {
		case BaseUbuntu:
			ubuntuResult = &results[i]
		case BaseAlpine:
			alpineResult = &results[i]
		}
	}

	if ubuntuResult == nil || ubuntuResult.Success {
		t.Error("被占用的 Ubuntu 变体应该失败")
	}
	if alpineResult == nil || !alpineResult.Success {
		t.Error("Alpine 变体应该不受影响并成功生成")
	}

	// 失败的变体不应破坏已存在的文件
	data, err := os.ReadFile(blocked)
	if err != nil {
		t.Fatalf("读取现有文件失败: %v", err)
	}
	if string(data) != "existing" {
		t.Error("失败的变体不应修改现有文件")
	}
}
